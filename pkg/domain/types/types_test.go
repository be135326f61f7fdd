package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

func TestSeverity(t *testing.T) {
	t.Run("valid severities", func(t *testing.T) {
		for _, s := range types.AllSeverities() {
			gt.Bool(t, s.IsValid()).True()
		}
	})

	t.Run("parse rejects unknown value", func(t *testing.T) {
		_, err := types.ParseSeverity("Severe")
		gt.Value(t, err).NotNil()
	})

	t.Run("parse accepts exact value", func(t *testing.T) {
		s, err := types.ParseSeverity("High")
		gt.NoError(t, err).Required()
		gt.Value(t, s).Equal(types.SeverityHigh)
	})
}

func TestStatusID(t *testing.T) {
	t.Run("reserved statuses", func(t *testing.T) {
		gt.Bool(t, types.StatusNew.Reserved()).True()
		gt.Bool(t, types.StatusResolved.Reserved()).True()
		gt.Bool(t, types.StatusCaseClosed.Reserved()).True()
		gt.Bool(t, types.StatusInProgress.Reserved()).False()
		gt.Bool(t, types.StatusID("dismissed").Reserved()).False()
	})

	t.Run("validate format", func(t *testing.T) {
		gt.NoError(t, types.StatusID("forwarded-to-upper-management").Validate())
		gt.Value(t, types.StatusID("").Validate()).NotNil()
		gt.Value(t, types.StatusID("In Progress").Validate()).NotNil()
	})
}

func TestRole(t *testing.T) {
	gt.Bool(t, types.RoleAdmin.CanManageCases()).True()
	gt.Bool(t, types.RoleOfficer.CanManageCases()).True()
	gt.Bool(t, types.RoleAnonymous.CanManageCases()).False()
	gt.Bool(t, types.RoleAdmin.CanAdminister()).True()
	gt.Bool(t, types.RoleOfficer.CanAdminister()).False()
	gt.Bool(t, types.RoleAnonymous.IsValid()).False()
}

func TestTrackingCode(t *testing.T) {
	t.Run("generated codes match format", func(t *testing.T) {
		seen := map[types.TrackingCode]bool{}
		for i := 0; i < 100; i++ {
			code, err := types.NewTrackingCode()
			gt.NoError(t, err).Required()
			gt.NoError(t, code.Validate())
			seen[code] = true
		}
		gt.Number(t, len(seen)).Equal(100)
	})

	t.Run("normalize uppercases input", func(t *testing.T) {
		code := types.NormalizeTrackingCode("  ib-a1b2-c3d4e5 ")
		gt.Value(t, code).Equal(types.TrackingCode("IB-A1B2-C3D4E5"))
		gt.NoError(t, code.Validate())
	})

	t.Run("validate rejects malformed codes", func(t *testing.T) {
		for _, s := range []string{"", "IB-123-456789", "XX-A1B2-C3D4E5", "IB-a1b2-c3d4e5"} {
			gt.Value(t, types.TrackingCode(s).Validate()).NotNil()
		}
	})
}

func TestShareToken(t *testing.T) {
	t.Run("generated tokens are long and unique", func(t *testing.T) {
		seen := map[types.ShareToken]bool{}
		for i := 0; i < 100; i++ {
			token, err := types.NewShareToken()
			gt.NoError(t, err).Required()
			gt.NoError(t, token.Validate())
			gt.Number(t, len(token)).Equal(20)
			seen[token] = true
		}
		gt.Number(t, len(seen)).Equal(100)
	})

	t.Run("short tokens are rejected", func(t *testing.T) {
		gt.Value(t, types.ShareToken("abc123").Validate()).NotNil()
	})
}
