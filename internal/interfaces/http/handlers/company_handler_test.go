package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	"orderdesk.backend/internal/usecases"
)

func newCompanyRouter(companies *companyRepoStub, users *userRepoStub) (*gin.Engine, *CompanyHandler) {
	gin.SetMode(gin.TestMode)
	h := NewCompanyHandler(usecases.NewCompanyUsecase(companies, users))
	r := gin.New()
	r.POST("/companies", h.CreateCompany)
	r.GET("/companies", h.ListCompanies)
	r.GET("/companies/:id", h.GetCompany)
	r.PUT("/companies/:id", h.UpdateCompany)
	r.PUT("/companies/:id/owner", h.UpdateCompanyOwner)
	r.DELETE("/companies/:id", h.DeleteCompany)
	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCompanyHandler_CRUD(t *testing.T) {
	companies := newCompanyRepoStub()
	users := newUserRepoStub()
	ownerID := uuid.New()
	users.users[ownerID] = &entities.User{ID: ownerID, Role: entities.UserRoleCompany, IsActive: true}
	r, _ := newCompanyRouter(companies, users)

	w := doJSON(t, r, http.MethodPost, "/companies", `{"name":"Stacked Burgers","ownerId":"`+ownerID.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var created entities.Company
	mustUnmarshal(t, w.Body.Bytes(), &created)
	if created.OwnerID == nil || *created.OwnerID != ownerID {
		t.Fatalf("owner not set: %+v", created)
	}

	// Company names are unique among active companies.
	w = doJSON(t, r, http.MethodPost, "/companies", `{"name":"Stacked Burgers"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate name: expected 409, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/companies/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/companies/"+created.ID.String(), `{"address":"12 Dock St"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if companies.companies[created.ID].Address.String != "12 Dock St" {
		t.Fatalf("address not updated: %+v", companies.companies[created.ID])
	}

	w = doJSON(t, r, http.MethodDelete, "/companies/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/companies/"+created.ID.String(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestCompanyHandler_UpdateOwner(t *testing.T) {
	companies := newCompanyRepoStub()
	users := newUserRepoStub()
	ownerID := uuid.New()
	users.users[ownerID] = &entities.User{ID: ownerID, Role: entities.UserRoleCompany, IsActive: true}
	r, _ := newCompanyRouter(companies, users)

	w := doJSON(t, r, http.MethodPost, "/companies", `{"name":"Stacked Burgers"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created entities.Company
	mustUnmarshal(t, w.Body.Bytes(), &created)

	w = doJSON(t, r, http.MethodPut, "/companies/"+created.ID.String()+"/owner", `{"ownerId":"`+ownerID.String()+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update owner: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if companies.companies[created.ID].OwnerID == nil || *companies.companies[created.ID].OwnerID != ownerID {
		t.Fatal("owner not reassigned")
	}

	w = doJSON(t, r, http.MethodPut, "/companies/"+created.ID.String()+"/owner", `{"ownerId":"`+uuid.NewString()+`"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown owner: expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCompanyHandler_InvalidID(t *testing.T) {
	r, _ := newCompanyRouter(newCompanyRepoStub(), newUserRepoStub())

	w := doJSON(t, r, http.MethodGet, "/companies/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
