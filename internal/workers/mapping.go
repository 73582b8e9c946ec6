package workers

import (
	"github.com/poshan-stack/nutriscan/pkg/query"
	"github.com/poshan-stack/nutriscan/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "workers", "w").
	Project("id", "ID").
	Project("name", "Name").
	Project("aadhaar_number", "AadhaarNumber").
	Project("center_code", "CenterCode").
	Project("password_hash", "PasswordHash").
	Project("created_at", "CreatedAt")

func scanWorker(s repository.Scanner) (Worker, error) {
	var w Worker

	err := s.Scan(
		&w.ID,
		&w.Name,
		&w.AadhaarNumber,
		&w.CenterCode,
		&w.PasswordHash,
		&w.CreatedAt,
	)

	return w, err
}
