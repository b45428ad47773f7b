package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NathanNorman/wegmans-shopping/models"
)

func TestAddSumsQuantityForSameProduct(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	_, err := carts.Add("u1", "s1", bananas(), 1, "banana")
	require.NoError(t, err)
	cart, err := carts.Add("u1", "s1", bananas(), 1, "banana")
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, "Bananas", cart[0].ProductName)
	assert.Equal(t, 2.0, cart[0].Quantity)

	var count int64
	db.Model(&models.CartLine{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddWeightItemTakesFractions(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	cart, err := carts.Add("u1", "s1", chicken(), 0.5, "chicken")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 0.5, cart[0].Quantity)

	_, err = carts.Add("u1", "s1", chicken(), 0.05, "chicken")
	assert.True(t, IsValidation(err))
}

func TestAddUnitItemRejectsFractions(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	_, err := carts.Add("u1", "s1", bananas(), 1.5, "banana")
	assert.True(t, IsValidation(err))

	_, err = carts.Add("u1", "s1", bananas(), 0, "banana")
	assert.True(t, IsValidation(err))
}

func TestSetQuantity(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	cart, err := carts.Add("u1", "s1", chicken(), 0.5, "")
	require.NoError(t, err)

	updated, err := carts.SetQuantity("u1", "s1", cart[0].ID, 1.2)
	require.NoError(t, err)
	assert.Equal(t, 1.2, updated[0].Quantity)

	_, err = carts.SetQuantity("u1", "s1", cart[0].ID, 0.05)
	assert.True(t, IsValidation(err))

	_, err = carts.SetQuantity("u1", "s1", 9999, 1)
	assert.True(t, IsNotFound(err))

	// Another user cannot touch the line.
	_, err = carts.SetQuantity("u2", "s1", cart[0].ID, 1)
	assert.True(t, IsNotFound(err))
}

func TestRemove(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	cart, err := carts.Add("u1", "s1", bananas(), 2, "")
	require.NoError(t, err)

	updated, err := carts.Remove("u1", "s1", cart[0].ID)
	require.NoError(t, err)
	assert.Empty(t, updated)

	_, err = carts.Remove("u1", "s1", cart[0].ID)
	assert.True(t, IsNotFound(err))
}

func TestClearIsStoreScoped(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	_, err := carts.Add("u1", "s1", bananas(), 1, "")
	require.NoError(t, err)
	_, err = carts.Add("u1", "s2", bananas(), 3, "")
	require.NoError(t, err)

	require.NoError(t, carts.Clear("u1", "s1"))

	s1, err := carts.Get("u1", "s1")
	require.NoError(t, err)
	assert.Empty(t, s1)

	s2, err := carts.Get("u1", "s2")
	require.NoError(t, err)
	require.Len(t, s2, 1)
	assert.Equal(t, 3.0, s2[0].Quantity)
}

func TestSameProductIsolatedPerStoreAndUser(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	_, err := carts.Add("u1", "s1", milk(), 1, "milk")
	require.NoError(t, err)
	_, err = carts.Add("u1", "s2", milk(), 2, "milk")
	require.NoError(t, err)
	_, err = carts.Add("u2", "s1", milk(), 4, "milk")
	require.NoError(t, err)

	var count int64
	db.Model(&models.CartLine{}).Count(&count)
	assert.Equal(t, int64(3), count)

	cart, err := carts.Get("u1", "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1.0, cart[0].Quantity)
}
