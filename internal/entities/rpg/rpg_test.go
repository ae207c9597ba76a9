package rpg_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
)

func TestBaseStats(t *testing.T) {
	s := rpg.BaseStats()

	assert.Equal(t, 30, s.Get(rpg.StatHealth))
	assert.Equal(t, 15, s.Get(rpg.StatGuard))
	for _, stat := range rpg.AllStats()[2:] {
		assert.Equal(t, 7, s.Get(stat), stat.String())
	}
}

func TestStatsAdd(t *testing.T) {
	a := rpg.Stats{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := rpg.Stats{-1, 0, 1, 0, -5, 0, 0, 2, 1}

	assert.Equal(t, rpg.Stats{0, 2, 4, 4, 0, 6, 7, 10, 10}, a.Add(b))
	assert.Equal(t, rpg.Stats{1, 2, 3, 4, 5, 6, 7, 8, 9}, a, "Add must not mutate the receiver")
}

func TestStatsJSON(t *testing.T) {
	data, err := json.Marshal(rpg.BaseStats())
	require.NoError(t, err)
	assert.JSONEq(t, `{"health":30,"guard":15,"strength":7,"magic":7,"speed":7,"defence":7,"resistance":7,"dexterity":7,"luck":7}`, string(data))

	var back rpg.Stats
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rpg.BaseStats(), back)

	assert.Error(t, json.Unmarshal([]byte(`{"charisma":3}`), &back))
}

func TestNewRecord(t *testing.T) {
	r := rpg.NewRecord("u1")

	assert.Equal(t, "u1", r.ID)
	assert.Equal(t, 1, r.Level)
	assert.Equal(t, rpg.PathNone, r.Path)
	assert.Empty(t, r.Classes)
	assert.Equal(t, 500, r.Balance)
	assert.Equal(t, 1, r.Reputation)
	assert.Zero(t, r.DailyStreak)
	assert.True(t, r.Cooldowns.Daily.IsZero())
}

func TestRecordCloneIsDeep(t *testing.T) {
	r := rpg.NewRecord("u1")
	r.Classes = []rpg.Class{rpg.ClassGuardian}

	c := r.Clone()
	c.Classes[0] = rpg.ClassAssassin
	c.Stats[rpg.StatLuck] = 99

	assert.Equal(t, rpg.ClassGuardian, r.Classes[0])
	assert.Equal(t, 7, r.Stats[rpg.StatLuck])
}

func TestClassCompatibility(t *testing.T) {
	guardian, ok := rpg.LookupClass(rpg.ClassGuardian)
	require.True(t, ok)
	cavalier, ok := rpg.LookupClass(rpg.ClassCavalier)
	require.True(t, ok)

	assert.True(t, guardian.CompatibleWith(rpg.PathWarrior))
	assert.False(t, guardian.CompatibleWith(rpg.PathCaster))
	assert.False(t, guardian.CompatibleWith(rpg.PathNone))
	assert.True(t, cavalier.CompatibleWith(rpg.PathRanger))
	assert.False(t, cavalier.CompatibleWith(rpg.PathNone))
}

func TestCatalogIsConsistent(t *testing.T) {
	for _, p := range rpg.PathNames() {
		info, ok := rpg.LookupPath(p)
		require.True(t, ok, p)
		for _, c := range info.Classes {
			cls, ok := rpg.LookupClass(c)
			require.True(t, ok, c)
			assert.Equal(t, p, cls.Path)
		}
	}
}

func TestAdminClasses(t *testing.T) {
	assert.Empty(t, rpg.AdminClasses(rpg.AdminNone))
	assert.Equal(t, []rpg.Class{rpg.ClassLord}, rpg.AdminClasses(rpg.AdminRegular))
	assert.Equal(t, []rpg.Class{rpg.ClassIdol, rpg.ClassLord}, rpg.AdminClasses(rpg.AdminOwner))
	assert.Equal(t, []rpg.Class{rpg.ClassArbiter, rpg.ClassIdol, rpg.ClassLord}, rpg.AdminClasses(rpg.AdminSuperuser))
	assert.Equal(t, rpg.AdminOwner, rpg.ParseAdminTier(rpg.AdminOwner.String()))
}
