package belboard

import (
	"fmt"
	"strings"
)

// LeaderboardEntry is the raw seed record the account set is derived from.
type LeaderboardEntry struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Email   string  `json:"email,omitempty" yaml:"email,omitempty"`
	Tier    Tier    `json:"tier" yaml:"tier"`
	Clicks  int     `json:"clicks" yaml:"clicks"`
	Orders  int     `json:"orders" yaml:"orders"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
}

// BuildAccounts derives the authoritative account set from the leaderboard
// seed. Synthetic fields (email fallback, referral code) are deterministic
// functions of the entry so rebuilding the set yields identical records.
func BuildAccounts(leaderboard []LeaderboardEntry) []Account {
	accounts := make([]Account, 0, len(leaderboard))
	for i, entry := range leaderboard {
		accounts = append(accounts, Account{
			ID:        entry.ID,
			Name:      entry.Name,
			Email:     deriveEmail(entry),
			Code:      deriveCode(entry.Name, i),
			Tier:      entry.Tier,
			Clicks30:  entry.Clicks,
			Orders30:  entry.Orders,
			Revenue30: entry.Revenue,
			Tags:      []string{"Top Performer"},
		})
	}
	return accounts
}

func deriveEmail(entry LeaderboardEntry) string {
	if entry.Email != "" {
		return entry.Email
	}
	slug := strings.ToLower(strings.Replace(entry.Name, " ", ".", 1))
	return slug + "@company.com"
}

// deriveCode builds a short referral code from the account's first name
// plus a position-derived suffix.
func deriveCode(name string, position int) string {
	first := name
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		first = name[:idx]
	}
	return fmt.Sprintf("%s%02d", strings.ToUpper(first), position+1)
}
