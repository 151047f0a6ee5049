package avl

import (
	"math/rand/v2"
	"sort"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/hashmap"
	"lukechampine.com/uint128"
)

func newIntTree(values ...int) Tree[int] {
	tree := NewOrderedTree[int]()
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

func TestTreeRotations(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
	}{
		{name: "left-left", values: []int{30, 20, 10}},
		{name: "right-right", values: []int{10, 20, 30}},
		{name: "left-right", values: []int{30, 10, 20}},
		{name: "right-left", values: []int{10, 30, 20}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := newIntTree(tc.values...)
			require.Equal(t, 3, tree.Size())
			require.NotNil(t, tree.root)
			require.Equal(t, 20, tree.root.value)
			require.Equal(t, 2, tree.root.height)
			require.Equal(t, 10, tree.root.left.value)
			require.Equal(t, 30, tree.root.right.value)
			require.NoError(t, tree.Validate())
		})
	}
}

func TestTreeAdd(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		tree := newIntTree(1, 2, 3)
		require.False(t, tree.Add(2))
		require.Equal(t, 3, tree.Size())
		require.NoError(t, tree.Validate())
	})

	t.Run("absent interface value", func(t *testing.T) {
		tree := NewTree[any](func(a, b any) int {
			return a.(int) - b.(int)
		})
		require.False(t, tree.Add(nil))
		require.True(t, tree.Add(1))
		require.False(t, tree.Add(nil))
		require.False(t, tree.Contains(nil))
		require.Equal(t, 1, tree.Size())
	})

	t.Run("absent pointer value", func(t *testing.T) {
		tree := NewTreeWithOptions(func(a, b *int) int {
			return *a - *b
		}, Options[*int]{
			IsAbsent: func(v *int) bool { return v == nil },
		})
		one := 1
		require.True(t, tree.Add(&one))
		require.False(t, tree.Add(nil))
		require.False(t, tree.Remove(nil))
		require.Equal(t, 1, tree.Size())
	})

	t.Run("ascending sequence stays balanced", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		for i := range 1024 {
			require.True(t, tree.Add(i))
		}
		require.Equal(t, 11, tree.Height())
		require.NoError(t, tree.Validate())
	})
}

func TestTreeRemove(t *testing.T) {
	t.Run("two children", func(t *testing.T) {
		tree := newIntTree(10, 5, 15, 12, 20)
		require.True(t, tree.Remove(15))
		require.Equal(t, 4, tree.Size())
		require.Equal(t, []int{5, 10, 12, 20}, tree.Values(InOrder))
		require.NoError(t, tree.Validate())
	})

	t.Run("not existing", func(t *testing.T) {
		tree := newIntTree(10, 20)
		require.False(t, tree.Remove(30))
		require.Equal(t, 2, tree.Size())
	})

	t.Run("empty tree", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		require.False(t, tree.Remove(1))
		require.Equal(t, 0, tree.Size())
	})

	t.Run("leaf and single child", func(t *testing.T) {
		tree := newIntTree(20, 10, 30, 5)
		require.True(t, tree.Remove(5))
		require.Equal(t, []int{10, 20, 30}, tree.Values(InOrder))
		require.True(t, tree.Add(25))
		require.True(t, tree.Remove(30))
		require.Equal(t, []int{10, 20, 25}, tree.Values(InOrder))
		require.NoError(t, tree.Validate())
	})

	t.Run("rebalance after removal", func(t *testing.T) {
		/*
			    20
			   /  \
			  10   30
			 /  \
			5    15
		*/
		tree := newIntTree(20, 10, 30, 5, 15)
		require.True(t, tree.Remove(30))
		require.Equal(t, 10, tree.root.value)
		require.Equal(t, 3, tree.root.height)
		require.Equal(t, []int{10, 5, 20, 15}, tree.Values(PreOrder))
		require.NoError(t, tree.Validate())
	})

	t.Run("remove all", func(t *testing.T) {
		values := rand.Perm(500)
		tree := newIntTree(values...)
		for _, v := range rand.Perm(500) {
			require.True(t, tree.Remove(v))
			require.False(t, tree.Contains(v))
			require.NoError(t, tree.Validate())
		}
		require.True(t, tree.IsEmpty())
		require.Nil(t, tree.root)
	})
}

func TestTreeQueries(t *testing.T) {
	tree := NewOrderedTree[string]()
	require.True(t, tree.IsEmpty())
	_, err := tree.Min()
	require.ErrorIs(t, err, ErrorTreeEmpty)
	_, err = tree.Max()
	require.ErrorIs(t, err, ErrorTreeEmpty)

	for _, v := range []string{"dog", "cat", "elephant", "bird"} {
		require.True(t, tree.Add(v))
	}
	require.False(t, tree.IsEmpty())
	require.True(t, tree.Contains("cat"))
	require.False(t, tree.Contains("cow"))

	minValue, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, "bird", minValue)
	maxValue, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, "elephant", maxValue)

	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Height())
	require.False(t, tree.Contains("cat"))
	require.True(t, tree.Add("cat"))
	require.Equal(t, 1, tree.Size())
}

func TestTreePooled(t *testing.T) {
	pool := NewNodePool[int]()
	tree := NewTreePooled(func(a, b int) int { return a - b }, pool)
	for i := range 100 {
		require.True(t, tree.Add(i))
	}
	for i := 0; i < 100; i += 2 {
		require.True(t, tree.Remove(i))
	}
	require.NoError(t, tree.Validate())
	tree.Clear()
	require.Equal(t, 0, tree.Size())
	for i := range 50 {
		require.True(t, tree.Add(i))
	}
	require.Equal(t, 50, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestTreeCustomComparator(t *testing.T) {
	tree := NewTree(func(a, b uint128.Uint128) int {
		return a.Cmp(b)
	})
	base := uint128.New(0, 1)
	values := []uint128.Uint128{
		base.Add64(7),
		uint128.From64(3),
		base,
		uint128.Max,
		uint128.Zero,
	}
	for _, v := range values {
		require.True(t, tree.Add(v))
	}
	require.False(t, tree.Add(uint128.From64(3)))
	minValue, err := tree.Min()
	require.NoError(t, err)
	require.True(t, minValue.IsZero())
	maxValue, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, uint128.Max, maxValue)
	sorted := tree.Values(InOrder)
	require.True(t, sort.SliceIsSorted(sorted, func(i, j int) bool {
		return sorted[i].Cmp(sorted[j]) < 0
	}))
	require.NoError(t, tree.Validate())
}

func TestTreeValidate(t *testing.T) {
	tree := newIntTree(1, 2, 3)
	tree.root.height = 5
	require.ErrorIs(t, tree.Validate(), ErrorInvariant)

	tree = newIntTree(1, 2, 3)
	tree.root.left.value = 4
	require.ErrorIs(t, tree.Validate(), ErrorInvariant)

	tree = newIntTree(1, 2, 3)
	tree.size = 4
	require.ErrorIs(t, tree.Validate(), ErrorInvariant)

	tree = NewOrderedTree[int]()
	tree.root = &intNode{value: 1, height: 3, right: &intNode{value: 2, height: 2, right: &intNode{value: 3, height: 1}}}
	tree.size = 3
	require.ErrorIs(t, tree.Validate(), ErrorInvariant)
}

func TestTreeRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	tree := NewOrderedTree[int]()
	model := hashmap.New[int, struct{}](0)
	for i := range 5000 {
		v := rnd.IntN(300)
		if rnd.IntN(3) == 0 {
			_, existed := model.Delete(v)
			require.Equal(t, existed, tree.Remove(v))
		} else {
			_, existed := model.Get(v)
			if !existed {
				model.Set(v, struct{}{})
			}
			require.Equal(t, !existed, tree.Add(v))
		}
		require.Equal(t, model.Len(), tree.Size())
		if i%100 == 0 {
			require.NoError(t, tree.Validate())
		}
	}
	values := tree.Values(InOrder)
	require.Len(t, values, model.Len())
	for i := 1; i < len(values); i++ {
		require.Less(t, values[i-1], values[i])
	}
}

func FuzzOrderedTree_AddRemove(f *testing.F) {
	testcases := []string{
		"abcdefg",
		"a",
		"gfedcba",
		"hello, world",
	}
	for _, tc := range testcases {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, str string) {
		tree := NewOrderedTree[rune]()
		model := hashmap.New[rune, struct{}](0)
		t.Logf("using runes: %q", str)
		for _, r := range str {
			_, seen := model.Get(r)
			model.Set(r, struct{}{})
			if tree.Add(r) == seen {
				t.Errorf("add(%q) result does not match duplicate state", string(r))
			}
			if !tree.Contains(r) {
				t.Errorf("just added, but contains(%q) == false", string(r))
			}
		}
		if tree.Size() != model.Len() {
			t.Errorf("want len=%d, got len=%d", model.Len(), tree.Size())
		}
		if utf8.RuneCountInString(str) < tree.Size() {
			t.Errorf("tree is larger than input")
		}
		if err := tree.Validate(); err != nil {
			t.Error(err)
		}
		for _, r := range str {
			lenBefore := tree.Size()
			_, present := model.Delete(r)
			if tree.Remove(r) != present {
				t.Errorf("remove(%q) result does not match model", string(r))
			}
			if present && lenBefore-1 != tree.Size() {
				t.Errorf("len did not shrink by 1: want %d, got %d", lenBefore-1, tree.Size())
			}
			if err := tree.Validate(); err != nil {
				t.Error(err)
			}
		}
		if tree.Size() != 0 {
			t.Errorf("want empty, got len=%d", tree.Size())
		}
	})
}

func BenchmarkTreeAdd(b *testing.B) {
	tree := NewOrderedTree[int]()
	for i := 0; i < b.N; i++ {
		tree.Add(i)
	}
}

func BenchmarkTreeAddRemovePooled(b *testing.B) {
	tree := NewTreePooled(func(a, b int) int { return a - b }, NewNodePool[int]())
	for i := 0; i < b.N; i++ {
		tree.Add(i)
		if i%2 == 1 {
			tree.Remove(i - 1)
		}
	}
}
