package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dealdesk/dealdesk-backend/internal/data/repos/testutil"
	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/apierr"
	"github.com/dealdesk/dealdesk-backend/internal/services"
)

func floatPtr(f float64) *float64 { return &f }

func stagePtr(s types.Stage) *types.Stage { return &s }

func TestDealCreateDefaultsStageToOpen(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := dealSvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	company := testutil.SeedCompany(t, ctx, tx, alice.ID, "Acme")

	deal, err := svc.Create(ctxFor(alice), services.DealInput{
		Title:     "First",
		Amount:    floatPtr(0),
		CompanyID: company.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if deal.Stage != types.StageOpen {
		t.Fatalf("expected stage OPEN, got %q", deal.Stage)
	}
	if deal.Amount != 0 {
		t.Fatalf("zero amount should be accepted, got %v", deal.Amount)
	}
	if deal.Company == nil || deal.Company.ID != company.ID {
		t.Fatalf("expected company preloaded, got %+v", deal.Company)
	}
}

func TestDealCreateRejectsUnknownStageAndCompany(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := dealSvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	company := testutil.SeedCompany(t, ctx, tx, alice.ID, "Acme")

	_, err := svc.Create(ctxFor(alice), services.DealInput{
		Title:     "Bad stage",
		Amount:    floatPtr(10),
		Stage:     types.Stage("WISHFUL"),
		CompanyID: company.ID,
	})
	if _, code := apierr.Resolve(err); code != "invalid_stage" {
		t.Fatalf("expected invalid_stage, got %v", err)
	}

	_, err = svc.Create(ctxFor(alice), services.DealInput{
		Title:     "Bad company",
		Amount:    floatPtr(10),
		CompanyID: 999999,
	})
	if _, code := apierr.Resolve(err); code != "unknown_company" {
		t.Fatalf("expected unknown_company, got %v", err)
	}
}

func TestDealUpdateStageAndContacts(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := dealSvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	company := testutil.SeedCompany(t, ctx, tx, alice.ID, "Acme")
	c1 := testutil.SeedContact(t, ctx, tx, alice.ID, "one")
	c2 := testutil.SeedContact(t, ctx, tx, alice.ID, "two")

	deal, err := svc.Create(ctxFor(alice), services.DealInput{
		Title:      "Pipeline",
		Amount:     floatPtr(5000),
		CompanyID:  company.ID,
		ContactIDs: uintsPtr(c1.ID, c2.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(deal.Contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(deal.Contacts))
	}

	updated, err := svc.Update(ctxFor(alice), deal.ID, services.DealPatch{
		Stage:      stagePtr(types.StageClosed),
		ContactIDs: uintsPtr(c2.ID),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Stage != types.StageClosed {
		t.Fatalf("expected CLOSED, got %q", updated.Stage)
	}
	if len(updated.Contacts) != 1 || updated.Contacts[0].ID != c2.ID {
		t.Fatalf("expected only contact %d, got %+v", c2.ID, updated.Contacts)
	}

	_, err = svc.Update(ctxFor(alice), deal.ID, services.DealPatch{Stage: stagePtr("SIDEWAYS")})
	if _, code := apierr.Resolve(err); code != "invalid_stage" {
		t.Fatalf("expected invalid_stage, got %v", err)
	}
}

func TestDealUpdateRejectsUnknownCompany(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := dealSvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	company := testutil.SeedCompany(t, ctx, tx, alice.ID, "Acme")
	deal := testutil.SeedDeal(t, ctx, tx, alice.ID, company.ID, "Pipeline")

	unknown := uint(999999)
	_, err := svc.Update(ctxFor(alice), deal.ID, services.DealPatch{CompanyID: &unknown})
	if _, code := apierr.Resolve(err); code != "unknown_company" {
		t.Fatalf("expected unknown_company, got %v", err)
	}

	got, err := svc.Get(ctxFor(alice), deal.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CompanyID != company.ID {
		t.Fatalf("company link should be unchanged, got %d", got.CompanyID)
	}
}

func TestDealDeleteRoleGate(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := dealSvc(t, tx)
	ctx := context.Background()

	admin := testutil.SeedUser(t, ctx, tx, "admin@example.com", types.RoleAdmin)
	company := testutil.SeedCompany(t, ctx, tx, admin.ID, "Acme")
	deal := testutil.SeedDeal(t, ctx, tx, admin.ID, company.ID, "Doomed")

	user := testutil.SeedUser(t, ctx, tx, "user@example.com", types.RoleUser)
	if err := svc.Delete(ctxFor(user), deal.ID); err == nil {
		t.Fatal("USER delete should be forbidden")
	} else if status, _ := apierr.Resolve(err); status != http.StatusForbidden {
		t.Fatalf("unexpected status %d", status)
	}

	if err := svc.Delete(ctxFor(admin), deal.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}
