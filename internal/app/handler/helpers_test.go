package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"medconsult/internal/app/config"
	"medconsult/internal/app/ds"
	"medconsult/internal/app/middleware"
	"medconsult/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
)

type testIdentity struct {
	userID      uint
	userType    string
	isSuperuser bool
}

func asDoctor(userID uint) testIdentity  { return testIdentity{userID: userID, userType: ds.UserTypeDoctor} }
func asPatient(userID uint) testIdentity { return testIdentity{userID: userID, userType: ds.UserTypePatient} }
func asSuperuser(userID uint) testIdentity {
	return testIdentity{userID: userID, userType: ds.UserTypeDoctor, isSuperuser: true}
}

// identityMiddleware plants a resolved identity on the context the way
// AuthMiddleware would after validating a credential.
func identityMiddleware(id testIdentity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id.userID)
		c.Set(middleware.EmailKey, "test@example.com")
		c.Set(middleware.UserTypeKey, id.userType)
		c.Set(middleware.IsSuperuserKey, id.isSuperuser)
		c.Next()
	}
}

func newTestHandler(repo *MockRepository, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewHandler(repo, cfg, auth.NewJWTService("test-secret"), stubSessions{}, stubFiles{})
}

// newTestRouter mounts every route under the same role guards as
// RegisterHandler, with the given identity already resolved.
func newTestRouter(h *Handler, id testIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(identityMiddleware(id))

	r.POST("/api/users/register", h.ApiRegisterUser)
	r.POST("/api/users/login", h.ApiLogin)
	r.GET("/api/users/:id", h.ApiGetUser)
	r.POST("/api/users/doctors", h.ApiCreateDoctorProfile)
	r.POST("/api/users/patients", h.ApiCreatePatientProfile)

	r.POST("/api/doctor-requests", middleware.RequireDoctor(), h.ApiCreateDoctorRequest)
	r.POST("/api/patient-requests", middleware.RequirePatient(), h.ApiCreatePatientRequest)
	r.PUT("/api/doctor-requests/:id/status", h.ApiDecideDoctorRequest)
	r.PUT("/api/patient-requests/:id/status", h.ApiDecidePatientRequest)
	r.POST("/api/doctor-patient", middleware.RequireDoctor(), h.ApiEstablishConnection)
	r.GET("/api/doctors/:id/patients", h.ApiListDoctorPatients)

	r.POST("/api/language-models", middleware.RequireSuperuser(), h.ApiCreateLanguageModel)
	r.GET("/api/language-models", h.ApiListLanguageModels)
	r.POST("/api/specialties", middleware.RequireSuperuser(), h.ApiCreateSpecialty)
	r.GET("/api/specialties", h.ApiListSpecialties)
	r.POST("/api/doctors/specialties", middleware.RequireDoctor(), h.ApiAddDoctorSpecialty)

	r.POST("/api/questions", middleware.RequirePatient(), h.ApiCreateQuestion)
	r.GET("/api/questions/:id", h.ApiGetQuestion)
	r.POST("/api/questions/:id/attachment", middleware.RequirePatient(), h.ApiUploadQuestionAttachment)
	r.POST("/api/answers", middleware.RequireSuperuser(), h.ApiCreateAnswer)
	r.POST("/api/comments", middleware.RequireDoctor(), h.ApiCreateComment)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart sends a multipart form with a single file field.
func doMultipart(t *testing.T, r *gin.Engine, method, path, fieldName, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
