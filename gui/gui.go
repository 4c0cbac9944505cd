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

package gui

import "github.com/gopher8/gopher8/hardware/display"

// GUI defines the operations that can be performed on a front end that shows
// the display of the emulated machine.
type GUI interface {
	display.PixelRenderer

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinel error returned if GUI does not support requested feature.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
)
