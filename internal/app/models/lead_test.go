package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusValid(t *testing.T) {
	for _, status := range LeadStatuses {
		assert.True(t, status.Valid(), status)
	}

	for _, status := range []LeadStatus{"", "accepted", "PENDING", "Waitlist", " Accepted"} {
		assert.False(t, status.Valid(), status)
	}
}
