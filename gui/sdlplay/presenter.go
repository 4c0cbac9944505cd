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

package sdlplay

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gopher8/gopher8/hardware/display"
	"github.com/gopher8/gopher8/logger"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// rendererPresenter draws pixels with a streaming texture and the SDL
// renderer.
type rendererPresenter struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func newRendererPresenter(window *sdl.Window) (*rendererPresenter, error) {
	pres := &rendererPresenter{}

	var err error

	// pixels must stay square and sharp when the texture is stretched
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	pres.renderer, err = sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}

	pres.texture, err = pres.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		_ = pres.renderer.Destroy()
		return nil, err
	}

	return pres, nil
}

func (pres *rendererPresenter) present(pixels []byte) error {
	tex, pitch, err := pres.texture.Lock(nil)
	if err != nil {
		return err
	}

	row := display.Width * pixelDepth
	for y := 0; y < display.Height; y++ {
		copy(tex[y*pitch:y*pitch+row], pixels[y*row:(y+1)*row])
	}
	pres.texture.Unlock()

	err = pres.renderer.Copy(pres.texture, nil, nil)
	if err != nil {
		return err
	}
	pres.renderer.Present()

	return nil
}

func (pres *rendererPresenter) destroy() error {
	err := pres.texture.Destroy()
	if err != nil {
		return err
	}
	return pres.renderer.Destroy()
}

// glPresenter draws pixels with glDrawPixels() in an OpenGL 2.1 context.
type glPresenter struct {
	window  *sdl.Window
	context sdl.GLContext
}

func newGLPresenter(window *sdl.Window) (*glPresenter, error) {
	pres := &glPresenter{window: window}

	var err error

	pres.context, err = window.GLCreateContext()
	if err != nil {
		return nil, err
	}

	err = window.GLMakeCurrent(pres.context)
	if err != nil {
		sdl.GLDeleteContext(pres.context)
		return nil, err
	}

	err = gl.Init()
	if err != nil {
		sdl.GLDeleteContext(pres.context)
		return nil, errors.Wrap(err, "gl21")
	}

	logger.Logf(logger.Allow, "gl21", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl21", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl21", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	return pres, nil
}

func (pres *glPresenter) present(pixels []byte) error {
	w, h := pres.window.GLGetDrawableSize()

	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// the first row of pixels is the top of the display. start at the top
	// left corner and draw downwards
	gl.RasterPos2f(-1, 1)
	gl.PixelZoom(float32(w)/display.Width, -float32(h)/display.Height)
	gl.DrawPixels(display.Width, display.Height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	pres.window.GLSwap()

	return nil
}

func (pres *glPresenter) destroy() error {
	sdl.GLDeleteContext(pres.context)
	return nil
}
