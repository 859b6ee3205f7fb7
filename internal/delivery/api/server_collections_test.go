package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServer_ProviderPhones(t *testing.T) {
	fx := newServerFixture(t)
	caller, providerID, phoneID := uuid.New(), uuid.New(), uuid.New()
	token := fx.token(t, caller, entity.RoleUser)
	base := "/api/v1/providers/" + providerID.String() + "/phones"

	fx.uc.EXPECT().
		AddPhones(mock.Anything, caller, providerID, []string{"04 2222 3333"}).
		Return([]usecase.ProviderPhoneView{{PhoneID: phoneID, PhoneNumber: "+886422223333"}}, nil)
	rec := fx.do(http.MethodPost, base, `{"phone_number": "04 2222 3333"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var phone usecase.ProviderPhoneView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &phone))
	assert.Equal(t, phoneID, phone.PhoneID)

	fx.uc.EXPECT().
		AddPhones(mock.Anything, caller, providerID, []string{"04 2222 3333", "0912 345 678"}).
		Return(nil, domainerrors.ErrProviderConflict)
	rec = fx.do(http.MethodPost, base+"/bulk", `{"phones": [{"phone_number": "04 2222 3333"}, {"phone_number": "0912 345 678"}]}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = fx.do(http.MethodPost, base+"/bulk", `{"phones": []}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodPost, base, `{"phone_number": "04 2222 3333"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	fx.uc.EXPECT().RemovePhone(mock.Anything, caller, providerID, phoneID).Return(domainerrors.ErrLastPhone)
	rec = fx.do(http.MethodDelete, base+"/"+phoneID.String(), "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LAST_PHONE", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodDelete, base+"/not-a-uuid", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ProviderWorkingHours(t *testing.T) {
	fx := newServerFixture(t)
	caller, providerID, entryID := uuid.New(), uuid.New(), uuid.New()
	token := fx.token(t, caller, entity.RoleUser)
	base := "/api/v1/providers/" + providerID.String() + "/working-hours"

	tuesday := usecase.WorkingHoursInput{DayOfWeek: "TUESDAY", StartTime: "09:00", EndTime: "17:00"}
	view := usecase.ProviderWorkingHoursView{
		WorkingHoursID: entryID,
		DayOfWeek:      entity.Tuesday,
		StartTime:      entity.MustTimeOfDay("09:00"),
		EndTime:        entity.MustTimeOfDay("17:00"),
	}

	fx.uc.EXPECT().
		AddWorkingHours(mock.Anything, caller, providerID, []usecase.WorkingHoursInput{tuesday}).
		Return([]usecase.ProviderWorkingHoursView{view}, nil)
	rec := fx.do(http.MethodPost, base, `{"day_of_week": "TUESDAY", "start_time": "09:00", "end_time": "17:00"}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	fx.uc.EXPECT().
		AddWorkingHours(mock.Anything, caller, providerID, mock.MatchedBy(func(in []usecase.WorkingHoursInput) bool { return len(in) == 2 })).
		Return([]usecase.ProviderWorkingHoursView{view, view}, nil)
	rec = fx.do(http.MethodPost, base+"/bulk", `{"working_hours": [
		{"day_of_week": "TUESDAY", "start_time": "09:00", "end_time": "17:00"},
		{"day_of_week": "WEDNESDAY", "start_time": "09:00", "end_time": "12:00"}
	]}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodPost, base, `{"day_of_week": "FUNDAY", "start_time": "09:00", "end_time": "17:00"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.uc.EXPECT().
		UpdateWorkingHours(mock.Anything, caller, providerID, entryID, &tuesday).
		Return(&view, nil)
	rec = fx.do(http.MethodPut, base+"/"+entryID.String(), `{"day_of_week": "TUESDAY", "start_time": "09:00", "end_time": "17:00"}`, token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fx.uc.EXPECT().RemoveWorkingHours(mock.Anything, caller, providerID, entryID).Return(domainerrors.ErrWorkingHoursNotFound)
	rec = fx.do(http.MethodDelete, base+"/"+entryID.String(), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "WORKING_HOURS_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestServer_ProviderUsers(t *testing.T) {
	fx := newServerFixture(t)
	caller, providerID, member := uuid.New(), uuid.New(), uuid.New()
	token := fx.token(t, caller, entity.RoleUser)
	base := "/api/v1/providers/" + providerID.String() + "/users"

	fx.uc.EXPECT().
		AddProviderUser(mock.Anything, caller, providerID, &usecase.ProviderUserInput{UserID: member, Role: "MODERATOR"}).
		Return(&usecase.ProviderUserView{UserID: member, Role: entity.ProviderRoleModerator}, nil)
	rec := fx.do(http.MethodPost, base, `{"user_id": "`+member.String()+`", "role": "MODERATOR"}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodPost, base, `{"user_id": "`+member.String()+`", "role": "ADMIN"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.uc.EXPECT().RemoveProviderUser(mock.Anything, caller, providerID, caller).Return(domainerrors.ErrLastOwner)
	rec = fx.do(http.MethodDelete, base+"/"+caller.String(), "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LAST_OWNER", decode(t, rec).Error.Code)

	fx.uc.EXPECT().RemoveProviderUser(mock.Anything, caller, providerID, member).Return(nil)
	rec = fx.do(http.MethodDelete, base+"/"+member.String(), "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
