package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
	"lx-registry-service/internal/core/services"
	"lx-registry-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	activeModels *testutil.MockActiveModelRepo
	modelMetas   *testutil.MockModelMetaRepo
	lxUsers      *testutil.MockLxUserRepo
	centers      *testutil.MockCenterRepo
	patients     *testutil.MockPatientRepo
	frames       *testutil.MockFrameRepo
	legacyFrames *testutil.MockLegacyFrameRepo
}

func setupRouter() (*testRepos, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	repos := &testRepos{
		activeModels: new(testutil.MockActiveModelRepo),
		modelMetas:   new(testutil.MockModelMetaRepo),
		lxUsers:      new(testutil.MockLxUserRepo),
		centers:      new(testutil.MockCenterRepo),
		patients:     new(testutil.MockPatientRepo),
		frames:       new(testutil.MockFrameRepo),
		legacyFrames: new(testutil.MockLegacyFrameRepo),
	}

	h := New(
		services.NewActiveModelService(repos.activeModels, repos.modelMetas, nil),
		services.NewModelMetaService(repos.modelMetas),
		services.NewLxUserService(repos.lxUsers, nil),
		services.NewCenterService(repos.centers),
		services.NewPatientService(repos.patients, repos.centers),
		services.NewFrameService(repos.frames),
		services.NewLegacyFrameService(repos.legacyFrames),
	)
	r := gin.New()
	api := r.Group("/api/v1/lx-registry")
	h.RegisterRoutes(api)

	return repos, r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, "/api/v1/lx-registry"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Active Models
// ============================================================================

func TestGetActiveModel(t *testing.T) {
	repos, r := setupRouter()

	id := uuid.New()
	repos.activeModels.On("GetByName", mock.Anything, "polyp").Return(&domain.ActiveModel{ID: id, Name: "polyp"}, nil)

	w := doRequest(r, http.MethodGet, "/active_models/polyp", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id.String(), resp["id"])
	assert.Nil(t, resp["model_meta_id"])
}

func TestGetActiveModel_NotFound(t *testing.T) {
	repos, r := setupRouter()

	repos.activeModels.On("GetByName", mock.Anything, "missing").Return(nil, domain.ErrActiveModelNotFound)

	w := doRequest(r, http.MethodGet, "/active_models/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetActiveModel_MultipleFound(t *testing.T) {
	repos, r := setupRouter()

	repos.activeModels.On("GetByName", mock.Anything, "dup").Return(nil, domain.ErrMultipleFound)

	w := doRequest(r, http.MethodGet, "/active_models/dup", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateActiveModel(t *testing.T) {
	repos, r := setupRouter()

	repos.activeModels.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActiveModel")).Return(nil)

	w := doRequest(r, http.MethodPost, "/active_models", map[string]any{"name": "polyp"})
	assert.Equal(t, http.StatusCreated, w.Code)
	repos.activeModels.AssertExpectations(t)
}

func TestCreateActiveModel_MissingName(t *testing.T) {
	_, r := setupRouter()

	w := doRequest(r, http.MethodPost, "/active_models", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateActiveModel_Conflict(t *testing.T) {
	repos, r := setupRouter()

	repos.activeModels.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActiveModel")).Return(domain.ErrActiveModelNameConflict)

	w := doRequest(r, http.MethodPost, "/active_models", map[string]any{"name": "polyp"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestActivateModel_Detach(t *testing.T) {
	repos, r := setupRouter()

	metaID := uuid.New()
	repos.activeModels.On("GetByName", mock.Anything, "polyp").Return(&domain.ActiveModel{Name: "polyp", ModelMetaID: &metaID}, nil)
	repos.activeModels.On("Update", mock.Anything, mock.AnythingOfType("*domain.ActiveModel")).Return(nil)

	w := doRequest(r, http.MethodPatch, "/active_models/polyp", map[string]any{"model_meta_id": nil})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp["model_meta_id"])
}

func TestListActiveModels(t *testing.T) {
	repos, r := setupRouter()

	models := []*domain.ActiveModel{{ID: uuid.New(), Name: "a"}}
	repos.activeModels.On("List", mock.Anything, mock.AnythingOfType("ports.ListFilter")).Return(models, 1, nil)

	w := doRequest(r, http.MethodGet, "/active_models?limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["total"])
	assert.Equal(t, float64(10), resp["page_size"])
}

func TestListCenters_PagingEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"limit above maximum", "?limit=1000", 100, 0},
		{"non-numeric limit", "?limit=abc", 20, 0},
		{"negative values", "?limit=-5&offset=-3", 20, 0},
		{"explicit page", "?limit=5&offset=10", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, r := setupRouter()

			centers := []*domain.Center{{ID: uuid.New(), Name: "a"}, {ID: uuid.New(), Name: "b"}}
			want := ports.ListFilter{Limit: tt.wantLimit, Offset: tt.wantOffset}
			repos.centers.On("List", mock.Anything, want).Return(centers, 40, nil)

			w := doRequest(r, http.MethodGet, "/centers"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, float64(tt.wantLimit), resp["page_size"])
			assert.Equal(t, float64(tt.wantOffset+len(centers)), resp["next_offset"])
			repos.centers.AssertExpectations(t)
		})
	}
}

func TestDeleteModelMeta_InvalidID(t *testing.T) {
	_, r := setupRouter()

	w := doRequest(r, http.MethodDelete, "/model_metas/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============================================================================
// Users
// ============================================================================

func TestGetLxUser_NotFound(t *testing.T) {
	repos, r := setupRouter()

	repos.lxUsers.On("GetByName", mock.Anything, "bob").Return(nil, domain.ErrLxUserNotFound)

	w := doRequest(r, http.MethodGet, "/lx_users/bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// Serialized entities
// ============================================================================

func TestCreateCenter(t *testing.T) {
	repos, r := setupRouter()

	repos.centers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Center")).Return(nil)

	w := doRequest(r, http.MethodPost, "/centers", map[string]any{"name": "uk-wuerzburg", "name_de": "Uniklinik"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, domain.CenterSchema.Fields(), keys(resp))
	assert.Equal(t, "Uniklinik", resp["name_de"])
}

func TestCreateCenter_Conflict(t *testing.T) {
	repos, r := setupRouter()

	repos.centers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Center")).Return(domain.ErrCenterNameConflict)

	w := doRequest(r, http.MethodPost, "/centers", map[string]any{"name": "dup"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetCenter_InternalError(t *testing.T) {
	repos, r := setupRouter()

	id := uuid.New()
	repos.centers.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection refused"))

	w := doRequest(r, http.MethodGet, "/centers/"+id.String(), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCreatePatient_InvalidDob(t *testing.T) {
	_, r := setupRouter()

	w := doRequest(r, http.MethodPost, "/patients", map[string]any{"first_name": "Max", "last_name": "Muster", "dob": "14.03.1961"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePatient_UnknownCenter(t *testing.T) {
	repos, r := setupRouter()

	centerID := uuid.New()
	repos.centers.On("GetByID", mock.Anything, centerID).Return(nil, domain.ErrCenterNotFound)

	w := doRequest(r, http.MethodPost, "/patients", map[string]any{
		"first_name": "Max",
		"last_name":  "Muster",
		"center_id":  centerID.String(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePatient_DefaultsToRealPerson(t *testing.T) {
	repos, r := setupRouter()

	repos.patients.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Patient) bool {
		return p.IsRealPerson
	})).Return(nil)

	w := doRequest(r, http.MethodPost, "/patients", map[string]any{"first_name": "Max", "last_name": "Muster"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["is_real_person"])
	repos.patients.AssertExpectations(t)
}

func TestReplaceFrame(t *testing.T) {
	repos, r := setupRouter()

	id := uuid.New()
	repos.frames.On("Update", mock.Anything, mock.AnythingOfType("*domain.Frame")).Return(nil)

	w := doRequest(r, http.MethodPut, "/frames/"+id.String(), map[string]any{
		"video_id":     uuid.New().String(),
		"frame_number": 12,
		"extracted":    true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id.String(), resp["id"])
	assert.Equal(t, true, resp["extracted"])
}

func TestCreateLegacyFrame_NegativeNumber(t *testing.T) {
	_, r := setupRouter()

	w := doRequest(r, http.MethodPost, "/legacy_frames", map[string]any{
		"video_id":     uuid.New().String(),
		"frame_number": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLegacyFrame_NotFound(t *testing.T) {
	repos, r := setupRouter()

	id := uuid.New()
	repos.legacyFrames.On("Delete", mock.Anything, id).Return(domain.ErrLegacyFrameNotFound)

	w := doRequest(r, http.MethodDelete, "/legacy_frames/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
