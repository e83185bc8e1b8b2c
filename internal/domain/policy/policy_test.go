package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/policy"
)

func TestAllows_AccionesCompartidas(t *testing.T) {
	shared := []policy.Action{
		policy.ActionOrderCreate,
		policy.ActionOrderView,
		policy.ActionOrderUpdate,
		policy.ActionPhotoUpload,
	}
	for _, action := range shared {
		assert.True(t, policy.Allows(entity.RoleAdmin, action), string(action))
		assert.True(t, policy.Allows(entity.RoleEmpleado, action), string(action))
	}
}

func TestAllows_AccionesSoloAdmin(t *testing.T) {
	adminOnly := []policy.Action{
		policy.ActionOrderSetCharge,
		policy.ActionOrderDelete,
		policy.ActionPhotoDelete,
		policy.ActionUserManage,
	}
	for _, action := range adminOnly {
		assert.True(t, policy.Allows(entity.RoleAdmin, action), string(action))
		assert.False(t, policy.Allows(entity.RoleEmpleado, action), string(action))
	}
}

func TestAllows_RolDesconocidoNiega(t *testing.T) {
	assert.False(t, policy.Allows("", policy.ActionOrderView))
	assert.False(t, policy.Allows("gerente", policy.ActionOrderView))
	assert.False(t, policy.Allows(entity.RoleAdmin, policy.Action("accion.inexistente")))
}
