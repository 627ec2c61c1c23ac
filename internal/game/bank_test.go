package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankPlaceBet(t *testing.T) {
	t.Parallel()
	bank := NewBank(DefaultBank)

	require.NoError(t, bank.PlaceBet(0))
	require.NoError(t, bank.PlaceBet(200))
	assert.Equal(t, 200, bank.Bet())

	assert.ErrorIs(t, bank.PlaceBet(201), ErrInvalidBet)
	assert.ErrorIs(t, bank.PlaceBet(-1), ErrInvalidBet)
	assert.Equal(t, 200, bank.Bet(), "rejected bets leave the previous bet")
}

func TestBankSettle(t *testing.T) {
	t.Parallel()
	bank := NewBank(200)
	require.NoError(t, bank.PlaceBet(20))

	bank.Win()
	assert.Equal(t, 220, bank.Balance())
	bank.Lose()
	bank.Lose()
	assert.Equal(t, 180, bank.Balance())
	assert.False(t, bank.IsBroke())

	require.NoError(t, bank.PlaceBet(180))
	bank.Lose()
	assert.True(t, bank.IsBroke())
}

func TestNewBankPanicsOnNegative(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewBank(-1) })
}
