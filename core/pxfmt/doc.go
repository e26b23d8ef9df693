// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pxfmt converts blocks of pixel data between sized pixel formats.
//
// Every conversion goes through a canonical four-slot intermediate pixel:
// red/depth, green/stencil, blue and alpha. Formats that carry normalized or
// floating-point data use a float64 intermediate, pure integer formats a
// uint32 one, and the two never mix in a single conversion. The supported
// formats, their layouts and their derived extraction constants live in a
// read-only registry keyed by SizedFormat.
package pxfmt
