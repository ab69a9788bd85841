package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	"orderdesk.backend/internal/usecases"
)

func newBranchRouter(branches *branchRepoStub, companies *companyRepoStub, users *userRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBranchHandler(usecases.NewBranchUsecase(branches, companies, users))
	r := gin.New()
	r.POST("/branches", h.CreateBranch)
	r.GET("/branches", h.ListBranches)
	r.GET("/branches/:id", h.GetBranch)
	r.PUT("/branches/:id", h.UpdateBranch)
	r.PUT("/branches/:id/owner", h.UpdateBranchOwner)
	r.DELETE("/branches/:id", h.DeleteBranch)
	return r
}

func seedCompany(companies *companyRepoStub, name string) *entities.Company {
	co := &entities.Company{ID: uuid.New(), Name: name, IsActive: true}
	companies.companies[co.ID] = co
	return co
}

func TestBranchHandler_CreateAndList(t *testing.T) {
	branches := newBranchRepoStub()
	companies := newCompanyRepoStub()
	users := newUserRepoStub()
	co := seedCompany(companies, "Stacked Burgers")
	other := seedCompany(companies, "Noodle House")
	r := newBranchRouter(branches, companies, users)

	w := doJSON(t, r, http.MethodPost, "/branches", `{"username":"stacked-dock","companyId":"`+co.ID.String()+`","latitude":52.37,"longitude":4.89}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created entities.Branch
	mustUnmarshal(t, w.Body.Bytes(), &created)
	if created.Latitude == nil || *created.Latitude != 52.37 {
		t.Fatalf("latitude not kept: %+v", created)
	}

	w = doJSON(t, r, http.MethodPost, "/branches", `{"username":"noodle-east","companyId":"`+other.ID.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("second create: expected 201, got %d", w.Code)
	}

	// Branch usernames are globally unique.
	w = doJSON(t, r, http.MethodPost, "/branches", `{"username":"stacked-dock","companyId":"`+other.ID.String()+`"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate username: expected 409, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/branches", `{"username":"orphan","companyId":"`+uuid.NewString()+`"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown company: expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/branches?companyId="+co.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listing struct {
		Branches   []*entities.Branch `json:"branches"`
		TotalCount int                `json:"totalCount"`
	}
	mustUnmarshal(t, w.Body.Bytes(), &listing)
	if listing.TotalCount != 1 || listing.Branches[0].Username != "stacked-dock" {
		t.Fatalf("expected only the company's branch, got %+v", listing)
	}
}

func TestBranchHandler_UpdateAndOwner(t *testing.T) {
	branches := newBranchRepoStub()
	companies := newCompanyRepoStub()
	users := newUserRepoStub()
	co := seedCompany(companies, "Stacked Burgers")
	ownerID := uuid.New()
	users.users[ownerID] = &entities.User{ID: ownerID, Role: entities.UserRoleBranch, IsActive: true}
	r := newBranchRouter(branches, companies, users)

	w := doJSON(t, r, http.MethodPost, "/branches", `{"username":"stacked-dock","companyId":"`+co.ID.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created entities.Branch
	mustUnmarshal(t, w.Body.Bytes(), &created)

	w = doJSON(t, r, http.MethodPut, "/branches/"+created.ID.String(), `{"rating":4.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if got := branches.branches[created.ID].Rating; got == nil || *got != 4.5 {
		t.Fatalf("rating not updated: %+v", branches.branches[created.ID])
	}

	w = doJSON(t, r, http.MethodPut, "/branches/"+created.ID.String()+"/owner", `{"ownerId":"`+ownerID.String()+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update owner: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/branches/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if branches.branches[created.ID].IsActive {
		t.Fatal("branch should be soft-deleted")
	}
}
