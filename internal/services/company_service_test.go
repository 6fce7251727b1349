package services

import (
	"errors"
	"testing"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCompanySaveUpsertsOneRow(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleCompany)

	first, err := companies.Save(user.ID, &dtos.CompanySaveRequest{
		Name:     "Acme Corp",
		Industry: strPtr("Software"),
		City:     strPtr("Pune"),
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Second save omits industry/city; they must survive the upsert.
	second, err := companies.Save(user.ID, &dtos.CompanySaveRequest{
		Name:        "Acme Corporation",
		FoundedYear: intPtr(2011),
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second save created row %d, want same row %d", second.ID, first.ID)
	}
	var n int64
	db.Model(&models.Company{}).Where("user_id = ?", user.ID).Count(&n)
	if n != 1 {
		t.Fatalf("company rows = %d, want 1", n)
	}
	if second.Name != "Acme Corporation" {
		t.Errorf("name = %q, want updated name", second.Name)
	}
	if second.Industry != "Software" || second.City != "Pune" {
		t.Errorf("omitted fields lost: industry=%q city=%q", second.Industry, second.City)
	}
	if second.FoundedYear == nil || *second.FoundedYear != 2011 {
		t.Errorf("founded_year = %v, want 2011", second.FoundedYear)
	}
}

func TestCompanyGetWithoutRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleCompany)

	if _, _, err := companies.Get(user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get = %v, want ErrNotFound", err)
	}
}

func TestSocialLinksActionLabel(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleCompany)
	if _, err := companies.Save(user.ID, &dtos.CompanySaveRequest{Name: "Acme"}); err != nil {
		t.Fatalf("save company: %v", err)
	}

	_, action, err := companies.SaveSocialLinks(user.ID, &dtos.SocialLinksRequest{LinkedIn: "https://linkedin.com/company/acme"})
	if err != nil {
		t.Fatalf("first links save: %v", err)
	}
	if action != "saved" {
		t.Errorf("first action = %q, want saved", action)
	}

	links, action, err := companies.SaveSocialLinks(user.ID, &dtos.SocialLinksRequest{Twitter: "https://x.com/acme"})
	if err != nil {
		t.Fatalf("second links save: %v", err)
	}
	if action != "updated" {
		t.Errorf("second action = %q, want updated", action)
	}
	if links.Twitter != "https://x.com/acme" {
		t.Errorf("twitter = %q, want new value", links.Twitter)
	}

	var n int64
	db.Model(&models.CompanySocialLink{}).Count(&n)
	if n != 1 {
		t.Errorf("links rows = %d, want 1", n)
	}
}

func TestClearMediaOnlyRequestedKind(t *testing.T) {
	db := newTestDB(t)
	store := newFakeStore()
	companies := NewCompanyService(db, newTestMedia(store))
	user := newTestUser(t, db, models.RoleCompany)
	if _, err := companies.Save(user.ID, &dtos.CompanySaveRequest{Name: "Acme"}); err != nil {
		t.Fatalf("save company: %v", err)
	}
	db.Model(&models.Company{}).Where("user_id = ?", user.ID).Updates(map[string]interface{}{
		"logo_url":   "/uploads/logo_1_a.webp",
		"banner_url": "/uploads/banner_1_b.webp",
	})

	if err := companies.ClearMedia(user.ID, "logo"); err != nil {
		t.Fatalf("clear logo: %v", err)
	}

	var company models.Company
	db.Where("user_id = ?", user.ID).First(&company)
	if company.LogoURL != "" {
		t.Errorf("logo_url = %q, want cleared", company.LogoURL)
	}
	if company.BannerURL != "/uploads/banner_1_b.webp" {
		t.Errorf("banner_url = %q, want untouched", company.BannerURL)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "/uploads/logo_1_a.webp" {
		t.Errorf("deleted files = %v, want just the logo", store.deleted)
	}
}

func TestClearMediaRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleCompany)
	if _, err := companies.Save(user.ID, &dtos.CompanySaveRequest{Name: "Acme"}); err != nil {
		t.Fatalf("save company: %v", err)
	}
	if err := companies.ClearMedia(user.ID, "poster"); !IsValidation(err) {
		t.Errorf("clear with bad type = %v, want validation error", err)
	}
}

func TestCompanyPublicViewRedactsContact(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleCompany)
	if _, err := companies.Save(user.ID, &dtos.CompanySaveRequest{
		Name:  "Acme",
		Phone: strPtr("555-0100"),
	}); err != nil {
		t.Fatalf("save company: %v", err)
	}

	view, err := companies.PublicView(user.ID)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if _, ok := view["phone"]; ok {
		t.Error("public view exposes phone")
	}
	if _, ok := view["contact_email"]; ok {
		t.Error("public view exposes contact_email")
	}
	if view["name"] != "Acme" {
		t.Errorf("name = %v, want Acme", view["name"])
	}
}
