package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rohitlokhande/portfolio/internal/schemas"
	"github.com/rohitlokhande/portfolio/internal/types"
	rootschemas "github.com/rohitlokhande/portfolio/schemas"
)

// ManifestFile is the name of the build manifest inside the output directory.
const ManifestFile = "build.json"

// CheckManifest validates dir/build.json against its schema and confirms every listed
// file exists. A missing manifest is not a violation.
func CheckManifest(dir string) ([]types.Violation, error) {
	path := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	if err := schemas.ValidateFile(rootschemas.BuildManifest, path); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return []types.Violation{{
				Type:     TypeManifestInvalid,
				Severity: SeverityError,
				Details:  fmt.Sprintf("manifest could not be checked: %v", loadErr.Cause),
			}}, nil
		}
		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) {
			return nil, &Error{Message: "failed to validate manifest", Cause: err}
		}
		violations := make([]types.Violation, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			violations = append(violations, types.Violation{
				Type:     TypeManifestInvalid,
				Severity: SeverityError,
				Details:  fmt.Sprintf("%s: %s", fe.Field, fe.Message),
			})
		}
		return violations, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Message: "failed to read manifest", Cause: err}
	}
	var manifest struct {
		Files []string `json:"files"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, &Error{Message: "failed to decode manifest", Cause: err}
	}

	var violations []types.Violation
	for _, name := range manifest.Files {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			violations = append(violations, types.Violation{
				Type:     TypeManifestMismatch,
				Severity: SeverityError,
				Details:  fmt.Sprintf("manifest lists %s but it is not in the output", name),
			})
		}
	}
	return violations, nil
}
