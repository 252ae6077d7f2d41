package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dealdesk/dealdesk-backend/internal/data/repos"
	"github.com/dealdesk/dealdesk-backend/internal/data/repos/testutil"
	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/apierr"
	"github.com/dealdesk/dealdesk-backend/internal/services"
)

func TestCompanyOwnershipIsolation(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := companySvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	bob := testutil.SeedUser(t, ctx, tx, "bob@example.com", types.RoleUser)

	created, err := svc.Create(ctxFor(alice), services.CompanyInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Bob cannot see, update or list Alice's company; the miss is reported
	// as a plain not-found.
	if _, err := svc.Get(ctxFor(bob), created.ID); err == nil {
		t.Fatal("expected not found for cross-owner read")
	} else if status, code := apierr.Resolve(err); status != http.StatusNotFound || code != "not_found" {
		t.Fatalf("cross-owner read resolved to (%d, %q)", status, code)
	}

	if _, err := svc.Update(ctxFor(bob), created.ID, services.CompanyPatch{Name: strPtr("Stolen")}); err == nil {
		t.Fatal("expected not found for cross-owner update")
	}

	result, err := svc.List(ctxFor(bob), repos.PageQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 0 || len(result.Items) != 0 {
		t.Fatalf("bob should see nothing, got total=%d items=%d", result.Total, len(result.Items))
	}

	got, err := svc.Get(ctxFor(alice), created.ID)
	if err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	if got.Name != "Acme" {
		t.Fatalf("unexpected company %+v", got)
	}
}

func TestCompanyDeleteRequiresAdmin(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := companySvc(t, tx)
	ctx := context.Background()

	admin := testutil.SeedUser(t, ctx, tx, "admin@example.com", types.RoleAdmin)
	user := testutil.SeedUser(t, ctx, tx, "user@example.com", types.RoleUser)
	row := testutil.SeedCompany(t, ctx, tx, user.ID, "Doomed")

	err := svc.Delete(ctxFor(user), row.ID)
	if err == nil {
		t.Fatal("USER delete should be forbidden")
	}
	if status, code := apierr.Resolve(err); status != http.StatusForbidden || code != "forbidden" {
		t.Fatalf("USER delete resolved to (%d, %q)", status, code)
	}

	// The role check runs before any data access, so the row is untouched.
	if got, err := svc.Get(ctxFor(user), row.ID); err != nil || got == nil {
		t.Fatalf("row should survive the denied delete: %v", err)
	}

	// An admin deletes only their own rows; someone else's row is a miss,
	// not a forbidden.
	err = svc.Delete(ctxFor(admin), row.ID)
	if status, code := apierr.Resolve(err); status != http.StatusNotFound || code != "not_found" {
		t.Fatalf("admin cross-owner delete resolved to (%d, %q)", status, code)
	}

	own := testutil.SeedCompany(t, ctx, tx, admin.ID, "Mine")
	if err := svc.Delete(ctxFor(admin), own.ID); err != nil {
		t.Fatalf("admin delete of own row: %v", err)
	}
}

func TestCompanyRelationPatchSemantics(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := companySvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	c1 := testutil.SeedContact(t, ctx, tx, alice.ID, "one")
	c2 := testutil.SeedContact(t, ctx, tx, alice.ID, "two")

	created, err := svc.Create(ctxFor(alice), services.CompanyInput{
		Name:       "Acme",
		ContactIDs: uintsPtr(c1.ID, c2.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created.Contacts) != 2 {
		t.Fatalf("expected 2 contacts preloaded, got %d", len(created.Contacts))
	}

	// A patch without the relation field leaves the edges alone.
	updated, err := svc.Update(ctxFor(alice), created.ID, services.CompanyPatch{Name: strPtr("Acme Corp")})
	if err != nil {
		t.Fatalf("Update without relation: %v", err)
	}
	if updated.Name != "Acme Corp" || len(updated.Contacts) != 2 {
		t.Fatalf("edges should be untouched, got name=%q contacts=%d", updated.Name, len(updated.Contacts))
	}

	// Naming the field rewrites the whole set.
	updated, err = svc.Update(ctxFor(alice), created.ID, services.CompanyPatch{ContactIDs: uintsPtr(c2.ID)})
	if err != nil {
		t.Fatalf("Update with relation: %v", err)
	}
	if len(updated.Contacts) != 1 || updated.Contacts[0].ID != c2.ID {
		t.Fatalf("expected only contact %d, got %+v", c2.ID, updated.Contacts)
	}

	// An explicit empty list clears every edge.
	updated, err = svc.Update(ctxFor(alice), created.ID, services.CompanyPatch{ContactIDs: uintsPtr()})
	if err != nil {
		t.Fatalf("Update clearing relation: %v", err)
	}
	if len(updated.Contacts) != 0 {
		t.Fatalf("expected no contacts, got %d", len(updated.Contacts))
	}
}

func TestCompanyUpdateRejectsUnknownContact(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := companySvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	c1 := testutil.SeedContact(t, ctx, tx, alice.ID, "one")
	created, err := svc.Create(ctxFor(alice), services.CompanyInput{Name: "Acme", ContactIDs: uintsPtr(c1.ID)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctxFor(alice), created.ID, services.CompanyPatch{ContactIDs: uintsPtr(999999)})
	if err == nil {
		t.Fatal("expected error for unknown contact id")
	}
	if _, code := apierr.Resolve(err); code != "unknown_relation_target" {
		t.Fatalf("unexpected code %q", code)
	}

	// The failed rewrite rolled back, so the old edge set survives.
	got, err := svc.Get(ctxFor(alice), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Contacts) != 1 || got.Contacts[0].ID != c1.ID {
		t.Fatalf("edge set should be unchanged, got %+v", got.Contacts)
	}
}

func TestCompanyRequiresIdentity(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := companySvc(t, tx)

	_, err := svc.List(context.Background(), repos.PageQuery{})
	if err == nil {
		t.Fatal("expected error without identity in context")
	}
	if status, code := apierr.Resolve(err); status != http.StatusUnauthorized || code != "unauthorized" {
		t.Fatalf("missing identity resolved to (%d, %q)", status, code)
	}
}

func TestCompanyListPagination(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := companySvc(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com", types.RoleUser)
	for _, name := range []string{"alpha", "beta", "gamma"} {
		testutil.SeedCompany(t, ctx, tx, alice.ID, name)
	}

	result, err := svc.List(ctxFor(alice), repos.PageQuery{Limit: "2", SortBy: "name", Order: "desc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 3 || len(result.Items) != 2 {
		t.Fatalf("expected total=3 items=2, got total=%d items=%d", result.Total, len(result.Items))
	}
	if result.Items[0].Name != "gamma" || result.Items[1].Name != "beta" {
		t.Fatalf("unexpected order: %q, %q", result.Items[0].Name, result.Items[1].Name)
	}
	if result.Page != 1 || result.Limit != 2 {
		t.Fatalf("unexpected page metadata %+v", result)
	}
}
