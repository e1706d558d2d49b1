/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package middleware

import (
	"net/http"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Log writes a debug line per request once it is served.
func Log(logger log.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Debugf("%s %s [%s] -> %d in %s", r.Method, r.URL.Path,
					chimiddleware.GetReqID(r.Context()), ww.Status(), time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
