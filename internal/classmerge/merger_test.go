package classmerge

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTailwindResolvesConflicts(t *testing.T) {
	t.Parallel()

	merger := NewTailwind()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "later padding wins", input: "p-2 p-4", want: "p-4"},
		{name: "later text colour wins", input: "text-red-500 text-blue-500", want: "text-blue-500"},
		{name: "unknown classes pass through", input: "custom-class", want: "custom-class"},
		{name: "blank input", input: "   ", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := merger.Merge(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTailwindKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{input: "mt-2 custom-class p-4", want: "mt-2 custom-class p-4"},
		{input: "flex items-center gap-2 gap-4", want: "flex items-center gap-4"},
		{input: "text-sm mt-2 mt-4", want: "text-sm mt-4"},
		{input: "p-2 mt-1 p-2", want: "mt-1 p-2"},
		{input: "custom-b custom-a px-2 py-1", want: "custom-b custom-a px-2 py-1"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := NewTailwind().Merge(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInSourceOrderIgnoresMergedOrdering(t *testing.T) {
	t.Parallel()

	require.Equal(t, "flex items-center gap-4", inSourceOrder("flex items-center gap-2 gap-4", "gap-4 flex items-center"))
	require.Equal(t, "mt-2 custom-class p-4", inSourceOrder("mt-2 custom-class p-4", "custom-class p-4 mt-2"))
	require.Equal(t, "a", inSourceOrder("a b", "a unexpected"))
}

func TestTailwindMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	merger := NewTailwind()
	inputs := []string{
		"p-2 p-4 mt-1",
		"flex items-center gap-2 gap-4",
		"text-sm font-medium text-lg",
	}

	for _, input := range inputs {
		once, err := merger.Merge(input)
		require.NoError(t, err)
		twice, err := merger.Merge(once)
		require.NoError(t, err)
		require.Equal(t, once, twice, "input %q", input)
	}
}

func TestTailwindRecoversFromPanics(t *testing.T) {
	t.Parallel()

	merger := &Tailwind{merge: func(...string) string { panic("bad class") }}
	_, err := merger.Merge("p-2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad class")
}

func TestVerbatim(t *testing.T) {
	t.Parallel()

	got, err := Verbatim.Merge("  p-2 p-4  p-2 ")
	require.NoError(t, err)
	require.Equal(t, "p-2 p-4", got)
}

type countingMerger struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *countingMerger) Merge(classes string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return classes + "!", nil
}

func TestCachedMemoises(t *testing.T) {
	t.Parallel()

	next := &countingMerger{}
	cached, err := NewCached(next, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := cached.Merge("a b")
		require.NoError(t, err)
		require.Equal(t, "a b!", got)
	}
	require.Equal(t, 1, next.calls)
	require.Equal(t, 1, cached.Len())

	_, _ = cached.Merge("c")
	_, _ = cached.Merge("d")
	require.Equal(t, 2, cached.Len())
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	next := &countingMerger{err: boom}
	cached, err := NewCached(next, 0)
	require.NoError(t, err)

	_, err = cached.Merge("a")
	require.ErrorIs(t, err, boom)
	_, err = cached.Merge("a")
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, next.calls)
	require.Zero(t, cached.Len())
}

func TestCachedRejectsNilMerger(t *testing.T) {
	t.Parallel()

	_, err := NewCached(nil, 10)
	require.Error(t, err)
}

func TestCachedIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	cached, err := NewCached(NewTailwind(), 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := cached.Merge("p-2 p-4")
				if err != nil || got != "p-4" {
					t.Errorf("unexpected merge result %q, %v", got, err)
				}
			}
		}()
	}
	wg.Wait()
}
