package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/hashx"
)

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()

	t.Run("populates empty collection", func(t *testing.T) {
		s, _ := newTestService(t)
		require.NoError(t, s.SeedDemo(ctx))

		us, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, us, 1+len(demoAlumni))

		admins := 0
		for _, u := range us {
			if u.IsAdmin() {
				admins++
				assert.Equal(t, 1, u.ID)
				assert.Equal(t, common.DefaultAdminEmail, u.Email)
				assert.Equal(t, hashx.Hash(common.DefaultAdminPassword), u.PasswordHash)
			} else {
				assert.Equal(t, hashx.Hash(common.DemoAlumniPassword), u.PasswordHash)
			}
		}
		assert.Equal(t, 1, admins)
	})

	t.Run("every department is represented", func(t *testing.T) {
		s, _ := newTestService(t)
		require.NoError(t, s.SeedDemo(ctx))

		us, err := s.List(ctx)
		require.NoError(t, err)
		depts := make(map[string]int)
		for _, u := range us {
			if !u.IsAdmin() {
				depts[u.Department]++
			}
		}
		for _, d := range []string{"CSE", "ECE", "EEE", "Mechanical", "Civil", "MBA", "Diploma"} {
			assert.GreaterOrEqual(t, depts[d], 1, d)
		}
	})

	t.Run("non-empty collection is not reseeded", func(t *testing.T) {
		s, _ := newTestService(t)
		seedUsers(t, s, []User{{ID: 1, Email: "only@x.com", Role: RoleAlumni}})

		require.NoError(t, s.SeedDemo(ctx))

		us, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, us, 1)
	})

	t.Run("repair pass runs even when seeding is skipped", func(t *testing.T) {
		s, _ := newTestService(t)
		seedUsers(t, s, []User{
			{ID: 1, Email: "a@x.com", Role: RoleAdmin},
			{ID: 2, Email: "b@x.com", Role: RoleAdmin},
		})

		require.NoError(t, s.SeedDemo(ctx))

		us, err := s.List(ctx)
		require.NoError(t, err)
		admins := 0
		for _, u := range us {
			if u.IsAdmin() {
				admins++
			}
		}
		assert.Equal(t, 1, admins)
	})
}
