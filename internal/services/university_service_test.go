package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
)

func TestReferralCodesUniqueAcrossManyUniversities(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1000-university simulation in short mode")
	}
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		user := newTestUser(t, db, models.RoleUniversity)
		uni, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{
			Name: strPtr(fmt.Sprintf("University %d", i)),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		code := uni.ReferralCode
		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}
		for _, ch := range code {
			if ch < '0' || ch > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate referral code %q at university %d", code, i)
		}
		seen[code] = true
	}
}

func TestReferralCodePreservedAcrossUpdates(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleUniversity)

	first, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{Name: strPtr("MIT")})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{City: strPtr("Cambridge")})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ReferralCode != first.ReferralCode {
		t.Errorf("referral code changed %q -> %q, want preserved", first.ReferralCode, second.ReferralCode)
	}
	if second.Name != "MIT" || second.City != "Cambridge" {
		t.Errorf("merge lost fields: name=%q city=%q", second.Name, second.City)
	}
	var n int64
	db.Model(&models.University{}).Where("user_id = ?", user.ID).Count(&n)
	if n != 1 {
		t.Errorf("university rows = %d, want 1", n)
	}
}

func TestReferralCodeFallbackAfterCollisions(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))

	// Occupy the code every bounded retry will draw.
	taken := newTestUser(t, db, models.RoleUniversity)
	if err := db.Create(&models.University{UserID: taken.ID, ReferralCode: "111111"}).Error; err != nil {
		t.Fatalf("seed taken code: %v", err)
	}

	// Five 6-digit draws all collide; the 7-digit fallback draw lands on a
	// free code once truncated.
	draws := 0
	unis.randDigits = func(n int) string {
		draws++
		if n == 7 {
			return "2222229"
		}
		return "111111"
	}

	user := newTestUser(t, db, models.RoleUniversity)
	uni, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{Name: strPtr("Fallback U")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if uni.ReferralCode != "222222" {
		t.Errorf("fallback code = %q, want 222222", uni.ReferralCode)
	}
	if draws != referralCodeAttempts+1 {
		t.Errorf("draws = %d, want %d retries plus one fallback", draws, referralCodeAttempts+1)
	}
}

func TestReferralCodeFallbackCollisionErrors(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))

	taken := newTestUser(t, db, models.RoleUniversity)
	if err := db.Create(&models.University{UserID: taken.ID, ReferralCode: "111111"}).Error; err != nil {
		t.Fatalf("seed taken code: %v", err)
	}
	// Every draw, fallback included, collides. The residual window must
	// surface as an error, never a duplicate row.
	unis.randDigits = func(n int) string { return "1111111"[:n] }

	user := newTestUser(t, db, models.RoleUniversity)
	if _, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{Name: strPtr("Unlucky U")}); err == nil {
		t.Fatal("save succeeded despite exhausted code space, want error")
	}
}

func TestUniversityGetWithoutRowReturnsEmptyArrays(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleUniversity)

	view, err := unis.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.University.ID != 0 {
		t.Errorf("university id = %d, want zero row", view.University.ID)
	}
	for name, l := range map[string]int{
		"departments": len(view.Departments),
		"programs":    len(view.Programs),
		"facilities":  len(view.Facilities),
		"placements":  len(view.Placements),
		"rankings":    len(view.Rankings),
		"research":    len(view.Research),
	} {
		if l != 0 {
			t.Errorf("%s = %d entries, want empty", name, l)
		}
	}
}

func TestFacilityDuplicateIsSpecific400(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleUniversity)
	if _, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{Name: strPtr("MIT")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := unis.AddFacility(user.ID, &dtos.FacilityRequest{Name: "Library"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := unis.AddFacility(user.ID, &dtos.FacilityRequest{Name: "Library"})
	if !IsValidation(err) {
		t.Fatalf("duplicate add = %v, want validation error", err)
	}
	if err.Error() != "Facility already exists" {
		t.Errorf("message = %q, want 'Facility already exists'", err.Error())
	}
}

func TestRankingOrderingPutsNilYearsLast(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleUniversity)
	if _, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{Name: strPtr("MIT")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := unis.AddRanking(user.ID, &dtos.RankingRequest{Agency: "NIRF", Year: intPtr(2022)}); err != nil {
		t.Fatalf("add 2022: %v", err)
	}
	if _, err := unis.AddRanking(user.ID, &dtos.RankingRequest{Agency: "QS"}); err != nil {
		t.Fatalf("add nil-year: %v", err)
	}
	if _, err := unis.AddRanking(user.ID, &dtos.RankingRequest{Agency: "THE", Year: intPtr(2024)}); err != nil {
		t.Fatalf("add 2024: %v", err)
	}

	view, err := unis.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Rankings) != 3 {
		t.Fatalf("rankings = %d, want 3", len(view.Rankings))
	}
	agencies := []string{view.Rankings[0].Agency, view.Rankings[1].Agency, view.Rankings[2].Agency}
	want := []string{"THE", "NIRF", "QS"}
	for i := range want {
		if agencies[i] != want[i] {
			t.Errorf("rankings order = %v, want %v", agencies, want)
			break
		}
	}
}

func TestUniversityChildDeleteScoped(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))
	owner := newTestUser(t, db, models.RoleUniversity)
	intruder := newTestUser(t, db, models.RoleUniversity)
	if _, err := unis.Save(owner.ID, &dtos.UniversitySaveRequest{Name: strPtr("MIT")}); err != nil {
		t.Fatalf("save owner: %v", err)
	}
	if _, err := unis.Save(intruder.ID, &dtos.UniversitySaveRequest{Name: strPtr("Rival")}); err != nil {
		t.Fatalf("save intruder: %v", err)
	}

	dept, err := unis.AddDepartment(owner.ID, &dtos.DepartmentRequest{Name: "Physics"})
	if err != nil {
		t.Fatalf("add department: %v", err)
	}
	if err := unis.DeleteDepartment(intruder.ID, dept.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete = %v, want ErrNotFound", err)
	}
	if err := unis.DeleteDepartment(owner.ID, dept.ID); err != nil {
		t.Errorf("owner delete: %v", err)
	}
}

func TestUniversityPublicViewRedacts(t *testing.T) {
	db := newTestDB(t)
	unis := NewUniversityService(db, newTestMedia(newFakeStore()))
	user := newTestUser(t, db, models.RoleUniversity)
	if _, err := unis.Save(user.ID, &dtos.UniversitySaveRequest{
		Name:  strPtr("MIT"),
		Phone: strPtr("555-0100"),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	view, err := unis.PublicView(user.ID)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if view.University.Phone != "" || view.University.ContactEmail != "" || view.University.ReferralCode != "" {
		t.Errorf("public view leaks contact/referral fields: %+v", view.University)
	}
}
