package belboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeedYAML = `user_profile:
  name: Abby Dong
  email: abby.dong@example.com
  role: Admin
leaderboard:
  - id: KTWADVANT
    name: Maxwell Walker
    tier: Explorer
    clicks: 1280
    orders: 35
    revenue: 8500
tickets:
  - ticket_number: TICK-2025-001
    referral_id: KTWADVANT
    subject: Payment delay
    status: Open
`

func TestDecodeSeedValid(t *testing.T) {
	seed, err := DecodeSeed(strings.NewReader(validSeedYAML))
	require.NoError(t, err)
	require.Len(t, seed.Leaderboard, 1)
	assert.Equal(t, "Maxwell Walker", seed.Leaderboard[0].Name)
	assert.Equal(t, StatusOpen, seed.Tickets[0].Status)
}

func TestDecodeSeedEmpty(t *testing.T) {
	_, err := DecodeSeed(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestDecodeSeedUnknownField(t *testing.T) {
	doc := validSeedYAML + "unexpected_section: true\n"
	_, err := DecodeSeed(strings.NewReader(doc))
	require.Error(t, err)
}

func TestDecodeSeedBadTier(t *testing.T) {
	doc := strings.Replace(validSeedYAML, "tier: Explorer", "tier: Platinum", 1)
	_, err := DecodeSeed(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestDecodeSeedBadTicketStatus(t *testing.T) {
	doc := strings.Replace(validSeedYAML, "status: Open", "status: Pending", 1)
	_, err := DecodeSeed(strings.NewReader(doc))
	require.Error(t, err)
}

func TestDecodeSeedMissingLeaderboard(t *testing.T) {
	doc := "user_profile:\n  name: Abby Dong\n"
	_, err := DecodeSeed(strings.NewReader(doc))
	require.Error(t, err)
}

func TestReadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSeedYAML), 0o644))

	seed, err := ReadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Abby Dong", seed.UserProfile.Name)

	_, err = ReadSeedFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestValidateSeedNil(t *testing.T) {
	require.Error(t, ValidateSeed(nil))
}

func TestDefaultSeedPassesSchema(t *testing.T) {
	require.NoError(t, ValidateSeed(DefaultSeed()))
}
