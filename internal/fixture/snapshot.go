package fixture

import "github.com/AlexZinkM/mockmint/internal/model"

// SaveSnapshot writes a fetched account in the same layout Load reads
func SaveSnapshot(path string, snap *model.AccountSnapshot) error {
	return writeJSON(path, snap)
}
