package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, role types.Role) *types.User {
	tb.Helper()
	u := &types.User{
		Name:     "Test User",
		Email:    email,
		Password: "pw",
		Role:     role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCompany(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uint, name string) *types.Company {
	tb.Helper()
	c := &types.Company{Name: name}
	c.CreatedByID = ownerID
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed company: %v", err)
	}
	return c
}

func SeedContact(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uint, name string) *types.Contact {
	tb.Helper()
	c := &types.Contact{Name: name}
	c.CreatedByID = ownerID
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

func SeedDeal(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID, companyID uint, title string) *types.Deal {
	tb.Helper()
	d := &types.Deal{Title: title, Amount: 100, Stage: types.StageOpen, CompanyID: companyID}
	d.CreatedByID = ownerID
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed deal: %v", err)
	}
	return d
}

func CountEdges(tb testing.TB, ctx context.Context, tx *gorm.DB, model interface{}, column string, id uint) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		tb.Fatalf("count edges: %v", err)
	}
	return n
}
