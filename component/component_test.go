package component

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/actcore/parameter"
)

func TestParseEntityType(t *testing.T) {
	for typ := TypePlayer; typ < TypeCount; typ++ {
		got, err := ParseEntityType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseEntityType("  Walker ")
	require.NoError(t, err)
	assert.Equal(t, TypeWalker, got)

	_, err = ParseEntityType("dragon")
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestDataRowsAreComplete(t *testing.T) {
	for typ := TypePlayer; typ < TypeCount; typ++ {
		d := Data(typ)
		assert.Equal(t, typ.String(), d.Name, "data row name mismatch for %d", typ)
		assert.NotZero(t, d.MaxHealth, "%s would spawn dead", d.Name)
	}
}

func TestEnemyFlagOnlyOnEnemyTeam(t *testing.T) {
	for typ := TypePlayer; typ < TypeCount; typ++ {
		d := Data(typ)
		if d.IsEnemy {
			assert.Equal(t, TeamEnemy, d.Team, "%s", d.Name)
		}
	}
	assert.True(t, Data(TypeSwitch).Indestructible())
	assert.Equal(t, uint16(parameter.HealthIndestructible), Data(TypeSwitch).MaxHealth)
	assert.False(t, Data(TypeSwitch).IsEnemy, "switches must not gate room clear")
}

func TestTeamOpposes(t *testing.T) {
	assert.True(t, TeamPlayer.Opposes(TeamEnemy))
	assert.True(t, TeamEnemy.Opposes(TeamPlayer))
	assert.False(t, TeamPlayer.Opposes(TeamPlayer))
	assert.False(t, TeamNeutral.Opposes(TeamEnemy))
	assert.False(t, TeamEnemy.Opposes(TeamNeutral))
}

func TestMovementStateMasks(t *testing.T) {
	m := CollideLeft | CollideDown
	assert.True(t, m.Has(CollideHorizontal))
	assert.True(t, m.Has(CollideVertical))
	assert.False(t, m.Has(CollideRight|CollideUp))
	assert.Equal(t, "invalid", TypeCount.String())
}
