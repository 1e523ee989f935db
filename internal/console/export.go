package console

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportWorkbook writes the current snapshot to an xlsx workbook with one
// sheet per entity type.  Foreign keys are exported through the same
// display resolution the console renders with, so a global role shows the
// "No Hospital" placeholder instead of a blank cell.
func ExportWorkbook(store *EntityStore, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	writeRow := func(sheet string, row int, values []any) error {
		return f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
	}

	f.SetSheetName("Sheet1", "Hospitals")
	if err := writeRow("Hospitals", 1, []any{"ID", "Name", "Address", "Created At"}); err != nil {
		return err
	}
	for i, h := range store.Hospitals() {
		if err := writeRow("Hospitals", i+2, []any{h.ID, h.Name, h.Address, h.CreatedAt.Format(time.RFC3339)}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Roles"); err != nil {
		return err
	}
	if err := writeRow("Roles", 1, []any{"ID", "Role Name", "Permissions", "Hospital"}); err != nil {
		return err
	}
	for i, r := range store.Roles() {
		if err := writeRow("Roles", i+2, []any{r.ID, r.RoleName, r.Permissions, RoleHospitalName(r)}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Users"); err != nil {
		return err
	}
	if err := writeRow("Users", 1, []any{"ID", "Username", "Full Name", "Email", "Role"}); err != nil {
		return err
	}
	for i, u := range store.Users() {
		if err := writeRow("Users", i+2, []any{u.ID, u.Username, u.FullName, u.Email, UserRoleName(u)}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Doctors"); err != nil {
		return err
	}
	if err := writeRow("Doctors", 1, []any{"ID", "Username", "Full Name", "Hospital", "Specialty", "Bio"}); err != nil {
		return err
	}
	for i, d := range store.Doctors() {
		if err := writeRow("Doctors", i+2, []any{d.ID, DoctorUsername(d), DoctorFullName(d), DoctorHospitalName(d), d.Specialty, DoctorBio(d)}); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
