// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rw.Status())
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected recorder status %d, got %d", http.StatusTeapot, rec.Code)
	}
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if _, err := rw.Write([]byte("ok")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rw.Status() != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rw.Status())
	}
}

func TestResponseWriter_NotDoubleWrapped(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	if newResponseWriter(rw) != rw {
		t.Fatal("expected existing wrapper to be reused")
	}
	if rw.Unwrap() == nil {
		t.Fatal("expected wrapped writer")
	}
}
