package queue

import (
	"errors"
)

var (
	ErrorQueueEmpty = errors.New("queue is empty")
)
