// FILE: internal/entity/verification_entity_test.go
package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushRecent(t *testing.T) {
	t.Run("inserts at the front", func(t *testing.T) {
		list := []RecentVerificationEntry{{Code: "111"}}
		out := PushRecent(list, RecentVerificationEntry{Code: "222"})

		assert.Len(t, out, 2)
		assert.Equal(t, "222", out[0].Code)
		assert.Equal(t, "111", out[1].Code)
	})

	t.Run("re-scanning moves the entry to the front", func(t *testing.T) {
		list := []RecentVerificationEntry{
			{Code: "111"},
			{Code: "222", Verified: false},
			{Code: "333"},
		}
		out := PushRecent(list, RecentVerificationEntry{Code: "222", Verified: true})

		assert.Len(t, out, 3)
		assert.Equal(t, "222", out[0].Code)
		assert.True(t, out[0].Verified, "the fresh entry replaces the stale one")
		assert.Equal(t, "111", out[1].Code)
		assert.Equal(t, "333", out[2].Code)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		var list []RecentVerificationEntry
		for i := 0; i < RecentLimit+3; i++ {
			list = PushRecent(list, RecentVerificationEntry{Code: fmt.Sprintf("%d", i)})
		}

		assert.Len(t, list, RecentLimit)
		assert.Equal(t, fmt.Sprintf("%d", RecentLimit+2), list[0].Code)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		list := []RecentVerificationEntry{{Code: "111"}, {Code: "222"}}
		PushRecent(list, RecentVerificationEntry{Code: "333"})

		assert.Equal(t, "111", list[0].Code)
		assert.Equal(t, "222", list[1].Code)
	})
}
