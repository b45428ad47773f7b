package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NathanNorman/wegmans-shopping/models"
)

func TestRecordCompletionCounts(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Milk", "Bread"}))
	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Milk"}))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Milk", ranked[0].ProductName)
	assert.Equal(t, 2, ranked[0].PurchaseCount)
	assert.Equal(t, 1, ranked[1].PurchaseCount)
}

func TestPinWithoutHistoryGetsSentinel(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.PinManually("u1", "s1", "Oat Milk"))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].IsManual)
	assert.Equal(t, manualPinCount, ranked[0].PurchaseCount)
}

func TestPinExistingKeepsOrganicCount(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Eggs"}))
	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Eggs"}))
	require.NoError(t, favorites.PinManually("u1", "s1", "Eggs"))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].IsManual)
	assert.Equal(t, 2, ranked[0].PurchaseCount)
}

func TestManualPinsAlwaysRankFirst(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	for i := 0; i < 10; i++ {
		require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Milk"}))
	}
	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Capers"}))
	require.NoError(t, favorites.PinManually("u1", "s1", "Capers"))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Capers", ranked[0].ProductName)
	assert.Equal(t, "Milk", ranked[1].ProductName)
}

func TestRankingIsDeterministicOnTies(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	favorites.now = fixedClock(now)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Milk", "Bread", "Eggs"}))

	first, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	second, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ProductName, second[i].ProductName)
	}
	// Equal count and recency fall back to insertion order.
	assert.Equal(t, "Milk", first[0].ProductName)
	assert.Equal(t, "Bread", first[1].ProductName)
	assert.Equal(t, "Eggs", first[2].ProductName)
}

func TestUnpinRevertsToOrganicCount(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Eggs"}))
	require.NoError(t, favorites.PinManually("u1", "s1", "Eggs"))
	require.NoError(t, favorites.Unpin("u1", "s1", "Eggs"))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.False(t, ranked[0].IsManual)
	assert.Equal(t, 1, ranked[0].PurchaseCount)
}

func TestUnpinSentinelOnlyItemRemovesIt(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.PinManually("u1", "s1", "Oat Milk"))
	require.NoError(t, favorites.Unpin("u1", "s1", "Oat Milk"))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	assert.Empty(t, ranked)

	err = favorites.Unpin("u1", "s1", "Oat Milk")
	assert.True(t, IsNotFound(err))
}

func TestOnListDeletedFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Bread"}))
	require.NoError(t, favorites.OnListDeleted("u1", "s1", []string{"Bread"}))

	// Zero and unpinned: gone.
	var count int64
	db.Model(&models.FrequentItem{}).Count(&count)
	assert.Zero(t, count)

	// Decrementing an absent product is a no-op.
	require.NoError(t, favorites.OnListDeleted("u1", "s1", []string{"Bread"}))
}

func TestOnListDeletedKeepsPinnedItemAtSentinel(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Eggs"}))
	require.NoError(t, favorites.PinManually("u1", "s1", "Eggs"))
	require.NoError(t, favorites.OnListDeleted("u1", "s1", []string{"Eggs"}))

	ranked, err := favorites.Ranked("u1", "s1")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].IsManual)
	assert.Equal(t, manualPinCount, ranked[0].PurchaseCount)
}

func TestFavoritesAreStoreScoped(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFrequentItemsAggregator(db)

	require.NoError(t, favorites.RecordCompletion("u1", "s1", []string{"Milk"}))
	require.NoError(t, favorites.RecordCompletion("u1", "s2", []string{"Milk"}))
	require.NoError(t, favorites.PinManually("u1", "s1", "Milk"))

	s2, err := favorites.Ranked("u1", "s2")
	require.NoError(t, err)
	require.Len(t, s2, 1)
	assert.False(t, s2[0].IsManual)
}
