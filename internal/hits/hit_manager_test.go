package hits

import (
	"testing"
	"time"

	"usage-counter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2021, 3, 14, 10, 0, 0, 0, time.UTC)

func newHit(session, action, pid string, offset time.Duration) *models.Hit {
	return &models.Hit{
		SessionID:   session,
		ActionName:  action,
		PID:         pid,
		ServerTime:  baseTime.Add(offset),
		ItemType:    models.ItemTypeArticle,
		ContentType: models.ContentArticleFullText,
	}
}

func TestHitManager_RemoveDoubleClicks_SameSessionWithinWindow(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	first := newHit("s1", "www.scielo.br/a", "P1", 0)
	second := newHit("s1", "www.scielo.br/a", "P1", 2*time.Second)
	manager.Add(first)
	manager.Add(second)

	removed := manager.RemoveDoubleClicks()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, manager.Len())
	groups := manager.GroupByIdentifier()
	require.Len(t, groups["P1"], 1)
	assert.Same(t, second, groups["P1"][0], "the later hit of a double click survives")
}

func TestHitManager_RemoveDoubleClicks_OutsideWindow(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	manager.Add(newHit("s1", "a", "P1", 0))
	manager.Add(newHit("s1", "a", "P1", 31*time.Second))

	assert.Equal(t, 0, manager.RemoveDoubleClicks())
	assert.Equal(t, 2, manager.Len())
}

func TestHitManager_RemoveDoubleClicks_ChainedRepeats(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	// Each repeat is compared with the last survivor, so a steady stream of reloads collapses.
	for i := 0; i < 5; i++ {
		manager.Add(newHit("s1", "a", "P1", time.Duration(i)*20*time.Second))
	}

	assert.Equal(t, 4, manager.RemoveDoubleClicks())
	groups := manager.GroupByIdentifier()
	require.Len(t, groups["P1"], 1)
	assert.Equal(t, baseTime.Add(80*time.Second), groups["P1"][0].ServerTime)
}

func TestHitManager_RemoveDoubleClicks_DifferentActionsKept(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	manager.Add(newHit("s1", "a", "P1", 0))
	manager.Add(newHit("s1", "b", "P1", time.Second))
	manager.Add(newHit("s1", "a", "P1", 2*time.Second))

	assert.Equal(t, 1, manager.RemoveDoubleClicks())
	groups := manager.GroupByIdentifier()
	require.Len(t, groups["P1"], 2)
	assert.Equal(t, "a", groups["P1"][0].ActionName)
	assert.Equal(t, baseTime.Add(2*time.Second), groups["P1"][0].ServerTime)
	assert.Equal(t, "b", groups["P1"][1].ActionName)
}

func TestHitManager_RemoveDoubleClicks_SessionIsolation(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	manager.Add(newHit("s1", "a", "P1", 0))
	manager.Add(newHit("s2", "a", "P1", time.Second))
	manager.Add(newHit("s3", "a", "P1", time.Second))

	assert.Equal(t, 0, manager.RemoveDoubleClicks())
	assert.Len(t, manager.GroupByIdentifier()["P1"], 3)
}

func TestHitManager_RemoveDoubleClicks_Idempotent(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	offsets := []time.Duration{0, 5, 10, 50, 55, 120, 121, 200}
	actions := []string{"a", "b", "a", "a", "b", "a", "b", "a"}
	for i, offset := range offsets {
		manager.Add(newHit("s1", actions[i], "P1", offset*time.Second))
	}

	manager.RemoveDoubleClicks()
	once := append([]*models.Hit(nil), manager.GroupByIdentifier()["P1"]...)

	assert.Equal(t, 0, manager.RemoveDoubleClicks())
	assert.Equal(t, once, manager.GroupByIdentifier()["P1"])
}

func TestHitManager_GroupByIdentifier_AcrossSessions(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	manager.Add(newHit("s1", "a", "P1", 0))
	manager.Add(newHit("s2", "b", "P2", 0))
	manager.Add(newHit("s2", "c", "P1", 0))
	unclassified := &models.Hit{
		SessionID:   "s3",
		ActionName:  "example.com",
		ServerTime:  baseTime,
		ItemType:    models.ItemTypeOther,
		ContentType: models.ContentOther,
	}
	manager.Add(unclassified)

	groups := manager.GroupByIdentifier()

	assert.Len(t, groups, 3)
	assert.Len(t, groups["P1"], 2)
	assert.Len(t, groups["P2"], 1)
	require.Len(t, groups[""], 1, "unclassified hits are retained")
	assert.Same(t, unclassified, groups[""][0])
}

func TestHitManager_Reset(t *testing.T) {
	t.Parallel()

	manager := NewHitManager(DefaultDoubleClickWindow)
	manager.Add(newHit("s1", "a", "P1", 0))
	manager.Add(nil)
	require.Equal(t, 1, manager.Len())

	manager.Reset()

	assert.Equal(t, 0, manager.Len())
	assert.Empty(t, manager.GroupByIdentifier())

	manager.Add(newHit("s1", "a", "P1", time.Second))
	assert.Equal(t, 0, manager.RemoveDoubleClicks(), "hits before reset never collapse with hits after it")
}

func TestSessionKey(t *testing.T) {
	t.Parallel()

	at := time.Date(2021, 3, 14, 10, 42, 7, 0, time.UTC)

	assert.Equal(t, "10.0.0.1|firefox|86.0|2021-03-14 10", SessionKey("10.0.0.1", "firefox", "86.0", at, models.SessionHour))
	assert.Equal(t, "10.0.0.1|firefox|86.0|2021-03-14 10:42", SessionKey("10.0.0.1", "firefox", "86.0", at, models.SessionMinute))
	assert.Equal(t,
		SessionKey("10.0.0.1", "firefox", "86.0", at, models.SessionHour),
		SessionKey("10.0.0.1", "firefox", "86.0", at.Add(10*time.Minute), models.SessionHour),
	)
	assert.NotEqual(t,
		SessionKey("10.0.0.1", "firefox", "86.0", at, models.SessionHour),
		SessionKey("10.0.0.1", "chrome", "86.0", at, models.SessionHour),
	)
}
