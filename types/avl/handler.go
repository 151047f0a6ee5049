package avl

// Rotation is an enumeration of elementary tree rotations.
type Rotation uint8

const (
	// RotationLeft moves the right child up into the place of its parent.
	RotationLeft Rotation = iota + 1
	// RotationRight moves the left child up into the place of its parent.
	RotationRight
)

func (r Rotation) String() string {
	switch r {
	case RotationLeft:
		return "left"
	case RotationRight:
		return "right"
	default:
		return "unknown"
	}
}

// Imbalance is an enumeration of subtree shapes corrected by rebalancing.
type Imbalance uint8

const (
	ImbalanceLeftLeft Imbalance = iota + 1
	ImbalanceLeftRight
	ImbalanceRightRight
	ImbalanceRightLeft
)

func (i Imbalance) String() string {
	switch i {
	case ImbalanceLeftLeft:
		return "LL"
	case ImbalanceLeftRight:
		return "LR"
	case ImbalanceRightRight:
		return "RR"
	case ImbalanceRightLeft:
		return "RL"
	default:
		return "unknown"
	}
}

// Handler receives notifications about tree restructuring.
// Handlers are called synchronously from Add and Remove.
//
//go:generate mockgen -destination=mocks/handler.go -package=mockavl . Handler
type Handler interface {
	// OnRebalance is called once per corrected subtree, before its rotations.
	OnRebalance(kind Imbalance)
	// OnRotate is called after each elementary rotation.
	OnRotate(rotation Rotation)
}

type nopHandler struct{}

func (nopHandler) OnRebalance(Imbalance) {}

func (nopHandler) OnRotate(Rotation) {}
