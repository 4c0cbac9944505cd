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

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/gopher8/gopher8/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address at which the statistics can be viewed.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, path)
}

// only one server can be bound to Address at any one time.
var (
	crit    sync.Mutex
	running *statsview.ViewManager
)

// Launch the statistics server in a new goroutine. Calling Launch() while a
// server is already running does nothing.
func Launch(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()

	if running != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	running = mgr

	go func() {
		err := mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL())
}

// Stop the statistics server if it is running.
func Stop() {
	crit.Lock()
	defer crit.Unlock()

	if running == nil {
		return
	}
	running.Stop()
	running = nil
}
