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

package web

import (
	"net/http"

	chttp "github.com/ONLYOFFICE/onlyoffice-events/pkg/service/http"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/controller"
	"github.com/go-chi/chi/v5"
)

type GifbotService struct {
	mux               *chi.Mux
	messageController controller.MessageController
}

// ApplyMiddleware useed to apply http server middlewares.
func (s GifbotService) ApplyMiddleware(middlewares ...func(http.Handler) http.Handler) {
	s.mux.Use(middlewares...)
}

// NewServer initializes http server with options.
func NewServer(messageController controller.MessageController) chttp.ServerEngine {
	return GifbotService{
		mux:               chi.NewRouter(),
		messageController: messageController,
	}
}

// NewHandler returns http server engine.
func (s GifbotService) NewHandler() http.Handler {
	s.InitializeRoutes()
	return s.mux
}

// InitializeRoutes builds all http routes.
func (s GifbotService) InitializeRoutes() {
	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/messages", s.messageController.BuildPostMessage())
	})
}
