package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the user row. The uq_users_email index is the authoritative
// guard against duplicate registrations; a violation comes back as
// gorm.ErrDuplicatedKey and the service translates it.
func (r *AccountRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, full_name, company, role, reputation, password_hash, status, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// fieldSpec ties an external field name to its column. The slice order is
// the stable order every projection comes back in. password_hash is not
// listed and therefore can never be projected.
type fieldSpec struct {
	name   string
	column string
}

var projectableFields = []fieldSpec{
	{name: "id", column: "id"},
	{name: "email", column: "email"},
	{name: "fullName", column: "full_name"},
	{name: "company", column: "company"},
	{name: "role", column: "role"},
	{name: "reputation", column: "reputation"},
	{name: "status", column: "status"},
}

// allowedSelection filters the requested names against the allow-list,
// dropping unknown ones and keeping canonical order regardless of request
// order.
func allowedSelection(fields []string) []fieldSpec {
	requested := make(map[string]bool, len(fields))
	for _, f := range fields {
		requested[f] = true
	}
	selected := make([]fieldSpec, 0, len(projectableFields))
	for _, spec := range projectableFields {
		if requested[spec.name] {
			selected = append(selected, spec)
		}
	}
	return selected
}

// resolveSelection applies the documented fallback: when nothing requested
// survives the allow-list, the full record is projected instead.
func resolveSelection(fields []string) []fieldSpec {
	specs := allowedSelection(fields)
	if len(specs) == 0 {
		return projectableFields
	}
	return specs
}

// FindFields projects the requested user attributes. When every requested
// name is unknown, or none were requested, the full record (all allow-listed
// columns) is returned instead. Missing users surface as
// gorm.ErrRecordNotFound.
func (r *AccountRepository) FindFields(ctx context.Context, userID int64, fields []string) (model.Projection, error) {
	specs := resolveSelection(fields)

	columns := make([]string, 0, len(specs))
	for _, spec := range specs {
		columns = append(columns, spec.column)
	}

	row := map[string]interface{}{}
	err := r.db.WithContext(ctx).
		Table("users").
		Select(columns).
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}

	projection := make(model.Projection, 0, len(specs))
	for _, spec := range specs {
		projection = append(projection, model.Field{Name: spec.name, Value: row[spec.column]})
	}
	return projection, nil
}
