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

// Package paths prepares paths to gopher8 resources, such as the preferences
// file.
//
// The ResourcePath() function returns the path to a resource in the
// appropriate configuration directory, creating any directories along the way
// if required. For example, the following returns the path to the main
// preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".gopher8", is present in the program's current directory
// then that is the base path that will be used. If it is not present then the
// user's global configuration directory is used, as found by the configdir
// package. On a modern Linux system this will be:
//
//	/home/user/.config/gopher8
package paths
