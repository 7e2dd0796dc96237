package issue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "tracker/internal/domain/issue/valueobjects"
)

func newTestIssue(t *testing.T) *Issue {
	t.Helper()
	i, err := NewIssue("Broken login", "Login fails with empty password", vo.StatusOpen, vo.PriorityHigh, nil)
	require.NoError(t, err)
	require.NoError(t, i.SetID(1))
	return i
}

func TestNewIssue_FreshDefaults(t *testing.T) {
	i, err := NewIssue("Something broke", "", vo.StatusOpen, vo.PriorityMedium, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, i.Version())
	assert.Nil(t, i.ResolvedAt())
	assert.Equal(t, vo.StatusOpen, i.Status())
	assert.Empty(t, i.Labels())
	assert.Empty(t, i.Comments())
}

func TestNewIssue_Validation(t *testing.T) {
	_, err := NewIssue("   ", "", vo.StatusOpen, vo.PriorityLow, nil)
	assert.Error(t, err)

	_, err = NewIssue("ok", "", vo.Status("done"), vo.PriorityLow, nil)
	assert.Error(t, err)

	_, err = NewIssue("ok", "", vo.StatusOpen, vo.Priority("urgent"), nil)
	assert.Error(t, err)
}

func TestApplyPatch_PartialUpdate(t *testing.T) {
	i := newTestIssue(t)
	originalDesc := i.Description()

	newTitle := "Clearer title"
	err := i.ApplyPatch(Patch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, i.Title())
	assert.Equal(t, originalDesc, i.Description())
	assert.Equal(t, vo.StatusOpen, i.Status())
	assert.Equal(t, 2, i.Version())
}

func TestApplyPatch_VersionAdvancesByOne(t *testing.T) {
	i := newTestIssue(t)

	desc := "updated"
	for n := 0; n < 3; n++ {
		require.NoError(t, i.ApplyPatch(Patch{Description: &desc}))
	}

	assert.Equal(t, 4, i.Version())
}

func TestApplyPatch_ResolvedSetsTimestampOnce(t *testing.T) {
	i := newTestIssue(t)

	resolved := vo.StatusResolved
	require.NoError(t, i.ApplyPatch(Patch{Status: &resolved}))
	require.NotNil(t, i.ResolvedAt())
	first := *i.ResolvedAt()

	// Re-resolving an already resolved issue keeps the original timestamp.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, i.ApplyPatch(Patch{Status: &resolved}))
	require.NotNil(t, i.ResolvedAt())
	assert.Equal(t, first, *i.ResolvedAt())
}

func TestApplyPatch_LeavingResolvedClearsTimestamp(t *testing.T) {
	i := newTestIssue(t)

	resolved := vo.StatusResolved
	require.NoError(t, i.ApplyPatch(Patch{Status: &resolved}))
	require.NotNil(t, i.ResolvedAt())

	open := vo.StatusOpen
	require.NoError(t, i.ApplyPatch(Patch{Status: &open}))
	assert.Nil(t, i.ResolvedAt())

	// Clearing an already nil timestamp is a no-op, not an error.
	closed := vo.StatusClosed
	require.NoError(t, i.ApplyPatch(Patch{Status: &closed}))
	assert.Nil(t, i.ResolvedAt())
}

func TestApplyPatch_NonStatusFieldsLeaveResolvedAtAlone(t *testing.T) {
	i := newTestIssue(t)

	resolved := vo.StatusResolved
	require.NoError(t, i.ApplyPatch(Patch{Status: &resolved}))
	require.NotNil(t, i.ResolvedAt())
	stamp := *i.ResolvedAt()

	newTitle := "Renamed"
	require.NoError(t, i.ApplyPatch(Patch{Title: &newTitle}))
	require.NotNil(t, i.ResolvedAt())
	assert.Equal(t, stamp, *i.ResolvedAt())
	assert.Equal(t, vo.StatusResolved, i.Status())
}

func TestApplyPatch_InvalidFieldsRejected(t *testing.T) {
	i := newTestIssue(t)

	empty := "  "
	err := i.ApplyPatch(Patch{Title: &empty})
	assert.Error(t, err)
	assert.Equal(t, 1, i.Version())

	bad := vo.Status("done")
	err = i.ApplyPatch(Patch{Status: &bad})
	assert.Error(t, err)
	assert.Equal(t, 1, i.Version())
}

func TestChangeStatus(t *testing.T) {
	i := newTestIssue(t)

	require.NoError(t, i.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, vo.StatusResolved, i.Status())
	assert.NotNil(t, i.ResolvedAt())
	assert.Equal(t, 2, i.Version())

	require.NoError(t, i.ChangeStatus(vo.StatusClosed))
	assert.Nil(t, i.ResolvedAt())
	assert.Equal(t, 3, i.Version())

	err := i.ChangeStatus(vo.Status("done"))
	assert.Error(t, err)
	assert.Equal(t, 3, i.Version())
}

func TestReconstructIssue(t *testing.T) {
	now := time.Now().UTC()
	resolvedAt := now.Add(-time.Hour)

	i, err := ReconstructIssue(7, "Old issue", "desc", vo.StatusResolved, vo.PriorityLow, 4, nil, now.Add(-2*time.Hour), now, &resolvedAt)
	require.NoError(t, err)
	assert.Equal(t, uint(7), i.ID())
	assert.Equal(t, 4, i.Version())
	require.NotNil(t, i.ResolvedAt())
	assert.Equal(t, resolvedAt, *i.ResolvedAt())

	_, err = ReconstructIssue(0, "x", "", vo.StatusOpen, vo.PriorityLow, 1, nil, now, now, nil)
	assert.Error(t, err)

	_, err = ReconstructIssue(1, "x", "", vo.StatusOpen, vo.PriorityLow, 0, nil, now, now, nil)
	assert.Error(t, err)
}

func TestAttachComment(t *testing.T) {
	i := newTestIssue(t)

	c, err := NewComment(1, 2, "looks like a regression")
	require.NoError(t, err)
	require.NoError(t, i.AttachComment(c))
	assert.Len(t, i.Comments(), 1)

	wrong, err := NewComment(99, 2, "wrong issue")
	require.NoError(t, err)
	assert.Error(t, i.AttachComment(wrong))
}
