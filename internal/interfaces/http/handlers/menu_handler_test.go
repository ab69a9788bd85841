package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	"orderdesk.backend/internal/usecases"
)

func seedBranch(branches *branchRepoStub, username string) *entities.Branch {
	b := &entities.Branch{ID: uuid.New(), Username: username, CompanyID: uuid.New(), IsActive: true}
	branches.branches[b.ID] = b
	return b
}

func seedMenu(menus *menuRepoStub, branchID uuid.UUID, name string) *entities.Menu {
	m := &entities.Menu{ID: uuid.New(), Name: name, BranchID: branchID, IsActive: true}
	menus.menus[m.ID] = m
	return m
}

func TestMenuHandler_CRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	menus := newMenuRepoStub()
	branches := newBranchRepoStub()
	branch := seedBranch(branches, "stacked-dock")

	h := NewMenuHandler(usecases.NewMenuUsecase(menus, branches))
	r := gin.New()
	r.POST("/menus", h.CreateMenu)
	r.GET("/menus", h.ListMenus)
	r.GET("/menus/:id", h.GetMenu)
	r.PUT("/menus/:id", h.UpdateMenu)
	r.DELETE("/menus/:id", h.DeleteMenu)

	w := doJSON(t, r, http.MethodPost, "/menus", `{"name":"Lunch","branchId":"`+branch.ID.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created entities.Menu
	mustUnmarshal(t, w.Body.Bytes(), &created)

	// Menu names are unique per branch.
	w = doJSON(t, r, http.MethodPost, "/menus", `{"name":"Lunch","branchId":"`+branch.ID.String()+`"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate name: expected 409, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/menus", `{"name":"Lunch","branchId":"`+uuid.NewString()+`"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown branch: expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/menus/"+created.ID.String(), `{"name":"Dinner"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("rename: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/menus?branchId="+branch.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listing struct {
		Menus      []*entities.Menu `json:"menus"`
		TotalCount int              `json:"totalCount"`
	}
	mustUnmarshal(t, w.Body.Bytes(), &listing)
	if listing.TotalCount != 1 || listing.Menus[0].Name != "Dinner" {
		t.Fatalf("unexpected listing: %+v", listing)
	}

	// branchId is mandatory for menu listings.
	w = doJSON(t, r, http.MethodGet, "/menus", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing branchId: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/menus/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if menus.menus[created.ID].IsActive {
		t.Fatal("menu should be soft-deleted")
	}
}
