package ordering

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendAll(t *testing.T, m *memTable, group string, ids ...string) {
	t.Helper()
	eng := NewEngine[string, string](m)
	for _, id := range ids {
		m.insert(group, id)
		_, err := eng.Append(context.Background(), group, id)
		require.NoError(t, err)
	}
}

func TestAppend_ReconstructsInCreationOrder(t *testing.T) {
	m := &memTable{}
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("b%d", i)
	}

	appendAll(t, m, "col", ids...)

	got, err := m.order("col")
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestAppend_FirstMemberLinksNothing(t *testing.T) {
	m := &memTable{}
	m.insert("col", "a")

	results, err := NewEngine[string, string](m).Append(context.Background(), "col", "a")
	require.NoError(t, err)
	assert.Equal(t, []Outcome{NoOp}, Outcomes(results))

	got, err := m.order("col")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestAppend_GroupsAreIndependent(t *testing.T) {
	m := &memTable{}
	appendAll(t, m, "A", "a1", "a2")
	appendAll(t, m, "B", "b1")
	appendAll(t, m, "A", "a3")

	a, err := m.order("A")
	require.NoError(t, err)
	b, err := m.order("B")
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "a2", "a3"}, a)
	assert.Equal(t, []string{"b1"}, b)
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		target   string
		newNext  *string
		expected []string
	}{
		{"tail to head", []string{"a", "b", "c"}, "c", ptr("a"), []string{"c", "a", "b"}},
		{"head to tail", []string{"a", "b", "c"}, "a", nil, []string{"b", "c", "a"}},
		{"middle to head", []string{"a", "b", "c"}, "b", ptr("a"), []string{"b", "a", "c"}},
		{"middle to tail", []string{"a", "b", "c", "d"}, "b", nil, []string{"a", "c", "d", "b"}},
		{"forward past one", []string{"a", "b", "c", "d"}, "a", ptr("c"), []string{"b", "a", "c", "d"}},
		{"backward past one", []string{"a", "b", "c", "d"}, "c", ptr("b"), []string{"a", "c", "b", "d"}},
		{"same position middle", []string{"a", "b", "c"}, "b", ptr("c"), []string{"a", "b", "c"}},
		{"same position tail", []string{"a", "b", "c"}, "c", nil, []string{"a", "b", "c"}},
		{"same position head", []string{"a", "b", "c"}, "a", ptr("b"), []string{"a", "b", "c"}},
		{"single member", []string{"a"}, "a", nil, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := build("g", tt.initial...)

			_, err := NewEngine[string, string](m).Reorder(context.Background(), tt.target, tt.newNext)
			require.NoError(t, err)

			got, err := m.order("g")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReorder_OutcomesOfHeadToTail(t *testing.T) {
	m := build("g", "a", "b", "c")

	results, err := NewEngine[string, string](m).Reorder(context.Background(), "a", nil)
	require.NoError(t, err)

	// a was the head: nobody pointed at it, so the bypass matches nothing
	assert.Equal(t, []Outcome{Applied, NoOp, Applied, Applied}, Outcomes(results))
	assert.Equal(t, StepBypass, results[1].Write.Step)
}

func TestMove_AcrossGroups(t *testing.T) {
	m := build("A", "a1", "a2")
	m.rows = append(m.rows, build("B", "b1").rows...)

	_, err := NewEngine[string, string](m).Move(context.Background(), "a2", "B", nil)
	require.NoError(t, err)

	a, err := m.order("A")
	require.NoError(t, err)
	b, err := m.order("B")
	require.NoError(t, err)

	assert.Equal(t, []string{"a1"}, a)
	assert.Equal(t, []string{"b1", "a2"}, b)
}

func TestMove_IntoEmptyGroup(t *testing.T) {
	m := build("A", "a1", "a2", "a3")

	results, err := NewEngine[string, string](m).Move(context.Background(), "a2", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, []Outcome{Applied, Applied, NoOp, Applied}, Outcomes(results))

	a, err := m.order("A")
	require.NoError(t, err)
	b, err := m.order("B")
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "a3"}, a)
	assert.Equal(t, []string{"a2"}, b)
}

func TestMove_BeforeHeadOfOtherGroup(t *testing.T) {
	m := build("A", "a1", "a2")
	m.rows = append(m.rows, build("B", "b1", "b2").rows...)

	_, err := NewEngine[string, string](m).Move(context.Background(), "a1", "B", ptr("b1"))
	require.NoError(t, err)

	a, _ := m.order("A")
	b, err := m.order("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, a)
	assert.Equal(t, []string{"a1", "b1", "b2"}, b)
}

func TestMove_NextInOtherGroupIsRejected(t *testing.T) {
	m := build("A", "a1", "a2")
	m.rows = append(m.rows, build("B", "b1").rows...)

	_, err := NewEngine[string, string](m).Move(context.Background(), "a1", "A", ptr("b1"))
	assert.ErrorIs(t, err, ErrNextOutsideGroup)
	assert.Empty(t, m.history, "nothing should be written")
}

func TestReorder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		newNext *string
		wantErr error
	}{
		{"missing target", "zz", nil, ErrNodeNotFound},
		{"missing insertion point", "a", ptr("zz"), ErrNextNotFound},
		{"before itself", "b", ptr("b"), ErrSelfReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := build("g", "a", "b", "c")

			_, err := NewEngine[string, string](m).Reorder(context.Background(), tt.target, tt.newNext)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, m.history, "nothing should be written")

			got, err := m.order("g")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, got)
		})
	}
}

func TestUnlink_RepairsChain(t *testing.T) {
	// z -> y -> x -> nil
	m := build("g", "z", "y", "x")

	results, err := NewEngine[string, string](m).Unlink(context.Background(), "y")
	require.NoError(t, err)
	assert.Equal(t, []Outcome{Applied, Applied, Applied}, Outcomes(results))

	z, err := m.Get(context.Background(), "z")
	require.NoError(t, err)
	require.NotNil(t, z.Next)
	assert.Equal(t, "x", *z.Next)

	got, err := m.order("g")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "x"}, got)
}

func TestUnlink_HeadAndTail(t *testing.T) {
	m := build("g", "a", "b", "c")
	eng := NewEngine[string, string](m)

	_, err := eng.Unlink(context.Background(), "a")
	require.NoError(t, err)
	_, err = eng.Unlink(context.Background(), "c")
	require.NoError(t, err)

	got, err := m.order("g")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)
}

func TestUnlink_MissingTarget(t *testing.T) {
	m := build("g", "a")

	_, err := NewEngine[string, string](m).Unlink(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNodeNotFound))
	assert.Len(t, m.rows, 1)
}

func TestUnlink_StopsAtFailure(t *testing.T) {
	m := build("g", "a", "b", "c")
	step := StepRemove
	m.failOn = &step

	results, err := NewEngine[string, string](m).Unlink(context.Background(), "b")
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []Outcome{Applied, Applied, Failed}, Outcomes(results))

	// the surviving rows still form a chain that skips b
	rows, _ := m.Members(context.Background(), "g")
	var live []Node[string, string]
	for _, n := range rows {
		if n.ID != "b" {
			live = append(live, n)
		}
	}
	assert.NoError(t, Check(live))
}

func TestEngine_InvariantHoldsAfterRandomishOperations(t *testing.T) {
	m := &memTable{}
	appendAll(t, m, "A", "1", "2", "3", "4", "5")
	appendAll(t, m, "B", "6", "7")
	eng := NewEngine[string, string](m)
	ctx := context.Background()

	ops := []func() error{
		func() error { _, err := eng.Reorder(ctx, "5", ptr("1")); return err },
		func() error { _, err := eng.Move(ctx, "3", "B", ptr("7")); return err },
		func() error { _, err := eng.Unlink(ctx, "2"); return err },
		func() error { _, err := eng.Move(ctx, "6", "A", nil); return err },
		func() error { _, err := eng.Reorder(ctx, "4", ptr("5")); return err },
		func() error { _, err := eng.Move(ctx, "7", "A", ptr("1")); return err },
	}

	for i, op := range ops {
		require.NoError(t, op(), "op %d", i)
		for _, g := range []string{"A", "B"} {
			rows, _ := m.Members(ctx, g)
			require.NoError(t, Check(rows), "group %s after op %d", g, i)
		}
	}

	a, _ := m.order("A")
	b, _ := m.order("B")
	assert.Equal(t, []string{"4", "5", "7", "1", "6"}, a)
	assert.Equal(t, []string{"3"}, b)
}

func TestEngine_Order(t *testing.T) {
	m := build("g", "x", "y")

	rows, err := NewEngine[string, string](m).Order(context.Background(), "g")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, IDs(rows))
}
