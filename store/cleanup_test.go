package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NathanNorman/wegmans-shopping/models"
)

func TestPurgeExpiredGuests(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)
	favorites := NewFrequentItemsAggregator(db)
	archive := NewListArchive(db, favorites)

	now := time.Now()
	stale := now.Add(-time.Hour)
	fresh := now.Add(time.Hour)

	require.NoError(t, db.Create(&models.User{ID: "guest_old", IsAnonymous: true, ExpiresAt: &stale}).Error)
	require.NoError(t, db.Create(&models.User{ID: "guest_new", IsAnonymous: true, ExpiresAt: &fresh}).Error)
	require.NoError(t, db.Create(&models.User{ID: "user_1", IsAnonymous: false}).Error)

	// Give the expired guest a full session worth of state.
	_, err := carts.Add("guest_old", "s1", bananas(), 1, "")
	require.NoError(t, err)
	_, err = archive.SaveAsNamedList("guest_old", "s1", "Weekly")
	require.NoError(t, err)
	_, err = carts.Add("guest_old", "s1", milk(), 1, "")
	require.NoError(t, err)

	_, err = carts.Add("guest_new", "s1", milk(), 2, "")
	require.NoError(t, err)

	purged, err := PurgeExpiredGuests(db, now)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	var users, lines, lists, items, favs int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.CartLine{}).Where("user_id = ?", "guest_old").Count(&lines)
	db.Model(&models.SavedList{}).Where("user_id = ?", "guest_old").Count(&lists)
	db.Model(&models.SavedListItem{}).Count(&items)
	db.Model(&models.FrequentItem{}).Where("user_id = ?", "guest_old").Count(&favs)

	assert.Equal(t, int64(2), users)
	assert.Zero(t, lines)
	assert.Zero(t, lists)
	assert.Zero(t, items)
	assert.Zero(t, favs)

	// The live guest is untouched.
	cart, err := carts.Get("guest_new", "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
}
