package userpayload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

func TestPasswordIsNeverWritten(t *testing.T) {
	u := &model.User{ID: 2, FirstName: "Jane", Email: "jane@example.com", Password: "secret"}

	b, err := json.Marshal(NewUserPayloadResponse(u))
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), `"role":"Regular User"`)
	assert.Contains(t, string(b), `"email":"jane@example.com"`)
	assert.Equal(t, "secret", u.Password, "payload must not modify the user")
}

func TestAdminRole(t *testing.T) {
	p := NewUserPayloadResponse(&model.User{IsAdmin: true})
	assert.Equal(t, "Admin", p.Role)
}

func TestNewUserListResponse(t *testing.T) {
	list := NewUserListResponse([]model.User{{ID: 2}, {ID: 3}})
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[1].(*UserPayload).ID)
}
