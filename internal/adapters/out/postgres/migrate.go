package postgres

import (
	"context"
	"fmt"

	"logistics/internal/adapters/out/postgres/directoryrepo"
	"logistics/internal/adapters/out/postgres/movementrepo"
	"logistics/internal/adapters/out/postgres/operationrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	table      string
	name       string
	definition string
}

// foreignKeys are added by hand because the DTOs carry no GORM associations.
// movements.entity_id deliberately has none: it is polymorphic.
var foreignKeys = []foreignKey{
	{"users", "fk_users_company", "FOREIGN KEY (company_id) REFERENCES companies(id)"},
	{"products", "fk_products_company", "FOREIGN KEY (company_id) REFERENCES companies(id)"},
	{"operations", "fk_operations_company", "FOREIGN KEY (company_id) REFERENCES companies(id)"},
	{"operations", "fk_operations_product", "FOREIGN KEY (product_id) REFERENCES products(id)"},
	{"operations", "fk_operations_updated_by", "FOREIGN KEY (updated_by) REFERENCES users(id) ON DELETE SET NULL"},
	{"movements", "fk_movements_company", "FOREIGN KEY (company_id) REFERENCES companies(id)"},
	{"movements", "fk_movements_created_by", "FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL"},
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&directoryrepo.CompanyDTO{},
		&directoryrepo.UserDTO{},
		&directoryrepo.ProductDTO{},
		&operationrepo.OperationDTO{},
		&movementrepo.MovementDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		var exists bool
		err := db.Raw(`
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE table_name = ? AND constraint_name = ?
			)`, fk.table, fk.name).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("inspect constraint %s: %w", fk.name, err)
		}
		if exists {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", fk.table, fk.name, fk.definition)
		if err = db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
