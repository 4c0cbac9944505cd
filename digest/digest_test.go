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

package digest_test

import (
	"testing"

	"github.com/gopher8/gopher8/digest"
	"github.com/gopher8/gopher8/hardware/display"
	"github.com/gopher8/gopher8/test"
)

func TestVideo(t *testing.T) {
	var dig digest.Digest = digest.NewVideo()
	zero := dig.Hash()
	test.ExpectEquality(t, len(zero), 40)

	vid := dig.(*digest.Video)

	var frame display.Frame
	test.ExpectSuccess(t, vid.Render(frame))
	blank := vid.Hash()
	test.ExpectInequality(t, blank, zero)
	test.ExpectEquality(t, vid.Frames(), 1)

	// the same frame a second time gives a different hash because the hashes
	// are chained
	test.ExpectSuccess(t, vid.Render(frame))
	test.ExpectInequality(t, vid.Hash(), blank)

	// repeating the sequence from reset gives the same hashes
	vid.ResetDigest()
	test.ExpectEquality(t, vid.Hash(), zero)
	test.ExpectEquality(t, vid.Frames(), 0)
	test.ExpectSuccess(t, vid.Render(frame))
	test.ExpectEquality(t, vid.Hash(), blank)

	// a different frame gives a different hash
	other := digest.NewVideo()
	frame[0][0] = true
	test.ExpectSuccess(t, other.Render(frame))
	test.ExpectInequality(t, other.Hash(), blank)
}

func TestVideoWithDisplay(t *testing.T) {
	dsp := display.NewDisplay()
	vid := digest.NewVideo()

	// the current frame is sent when the renderer is added
	test.ExpectSuccess(t, dsp.AddPixelRenderer(vid))
	test.ExpectEquality(t, vid.Frames(), 1)

	dsp.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectSuccess(t, dsp.Refresh())
	test.ExpectEquality(t, vid.Frames(), 2)

	// refresh without change does not send a frame
	test.ExpectSuccess(t, dsp.Refresh())
	test.ExpectEquality(t, vid.Frames(), 2)
}
