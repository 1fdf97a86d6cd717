// FILE: internal/service/certificate_service_test.go
package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCertificateId(t *testing.T) {
	format := regexp.MustCompile(`^CERT-[A-Z0-9]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := generateCertificateId()
		require.NoError(t, err)
		assert.Regexp(t, format, id)
		seen[id] = true
	}

	// 100 random ids over a 36^9 space colliding would mean the generator
	// is broken, not unlucky.
	assert.Len(t, seen, 100)
}
