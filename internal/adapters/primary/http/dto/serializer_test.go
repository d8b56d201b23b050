package dto

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lx-registry-service/internal/core/domain"
)

// jsonFields lists the json names of a struct's fields in declaration order.
func jsonFields(v any) []string {
	t := reflect.TypeOf(v)
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		fields = append(fields, name)
	}
	return fields
}

func TestSerializers_ExposeAllSchemaFields(t *testing.T) {
	tests := []struct {
		name   string
		dto    any
		schema domain.Schema
	}{
		{"center", CenterDTO{}, domain.CenterSchema},
		{"patient", PatientDTO{}, domain.PatientSchema},
		{"frame", FrameDTO{}, domain.FrameSchema},
		{"legacy_frame", LegacyFrameDTO{}, domain.LegacyFrameSchema},
		{"active_model", ActiveModelResponse{}, domain.ActiveModelSchema},
		{"model_meta", ModelMetaResponse{}, domain.ModelMetaSchema},
		{"lx_user", LxUserResponse{}, domain.LxUserSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.schema.Fields(), jsonFields(tt.dto))
		})
	}
}

// ============================================================================
// Center
// ============================================================================

func TestCenterSerializer_RoundTrip(t *testing.T) {
	s := CenterSerializer{}
	center := &domain.Center{ID: uuid.New(), Name: "uk-wuerzburg", NameDe: "Uniklinik Würzburg", NameEn: "University Hospital Würzburg"}

	got, err := s.Deserialize(s.Serialize(center))
	require.NoError(t, err)
	assert.Equal(t, center, got)
}

func TestCenterSerializer_JSON(t *testing.T) {
	s := CenterSerializer{}
	id := uuid.MustParse("7d3c1a0e-5b6f-4c1e-9a57-2f0c3e8b4d11")

	raw, err := json.Marshal(s.Serialize(&domain.Center{ID: id, Name: "c1"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7d3c1a0e-5b6f-4c1e-9a57-2f0c3e8b4d11","name":"c1","name_de":"","name_en":""}`, string(raw))
}

// ============================================================================
// Patient
// ============================================================================

func TestPatientSerializer_RoundTrip(t *testing.T) {
	s := PatientSerializer{}
	dob := time.Date(1961, time.March, 14, 0, 0, 0, 0, time.UTC)
	centerID := uuid.New()
	patient := &domain.Patient{
		ID:           uuid.New(),
		FirstName:    "Max",
		LastName:     "Mustermann",
		Dob:          &dob,
		Gender:       "male",
		Email:        "max@example.org",
		Phone:        "+49 931 0000",
		CenterID:     &centerID,
		IsRealPerson: true,
	}

	d := s.Serialize(patient)
	require.NotNil(t, d.Dob)
	assert.Equal(t, "1961-03-14", *d.Dob)

	got, err := s.Deserialize(d)
	require.NoError(t, err)
	assert.Equal(t, patient, got)
}

func TestPatientSerializer_NullFields(t *testing.T) {
	s := PatientSerializer{}
	patient := &domain.Patient{ID: uuid.New(), LastName: "Doe"}

	d := s.Serialize(patient)
	assert.Nil(t, d.Dob)
	assert.Nil(t, d.CenterID)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dob":null`)
	assert.Contains(t, string(raw), `"center_id":null`)

	got, err := s.Deserialize(d)
	require.NoError(t, err)
	assert.Equal(t, patient, got)
}

func TestPatientSerializer_IsRealPersonDefault(t *testing.T) {
	s := PatientSerializer{}

	var omitted PatientDTO
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Max","last_name":"Muster"}`), &omitted))
	p, err := s.Deserialize(omitted)
	require.NoError(t, err)
	assert.True(t, p.IsRealPerson)

	var explicit PatientDTO
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Test","last_name":"Phantom","is_real_person":false}`), &explicit))
	p, err = s.Deserialize(explicit)
	require.NoError(t, err)
	assert.False(t, p.IsRealPerson)
}

func TestPatientSerializer_InvalidDob(t *testing.T) {
	s := PatientSerializer{}
	bad := "14.03.1961"

	_, err := s.Deserialize(PatientDTO{LastName: "Doe", Dob: &bad})
	assert.Error(t, err)
}

// ============================================================================
// Frames
// ============================================================================

func TestFrameSerializer_RoundTrip(t *testing.T) {
	s := FrameSerializer{}
	frame := &domain.Frame{ID: uuid.New(), VideoID: uuid.New(), FrameNumber: 42, Image: "frames/42.jpg", Suffix: ".jpg", Extracted: true}

	got, err := s.Deserialize(s.Serialize(frame))
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestLegacyFrameSerializer_RoundTrip(t *testing.T) {
	s := LegacyFrameSerializer{}
	frame := &domain.LegacyFrame{ID: uuid.New(), VideoID: uuid.New(), FrameNumber: 0, Image: "legacy/0.png", Suffix: ".png"}

	got, err := s.Deserialize(s.Serialize(frame))
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestNewListResponse(t *testing.T) {
	resp := NewListResponse[CenterDTO](nil, 0, 20, 0)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)

	resp = NewListResponse([]CenterDTO{{Name: "a"}, {Name: "b"}}, 12, 2, 4)
	assert.Equal(t, 6, resp.NextOffset)
	assert.Equal(t, 12, resp.Total)
}
