// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
)

// the local base path for all resources. if this directory exists in the
// current directory then it takes precedence over the user's configuration
// directory.
const baseResourcePath = ".gopher8"

// name of the application as used by configdir. the vendor name is left
// empty so that the directory is not nested.
const applicationName = "gopher8"

// ResourcePath returns the path to the resource file in the subPth
// directory. The directories leading to the resource are created if they do
// not already exist. Either subPth or file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", errors.Wrap(err, "paths")
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	var base string

	if _, err := os.Stat(baseResourcePath); err == nil {
		base = baseResourcePath
	} else {
		cfg := configdir.New("", applicationName)
		folders := cfg.QueryFolders(configdir.Global)
		if len(folders) == 0 {
			return "", errors.New("no configuration directory available")
		}
		base = folders[0].Path
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
