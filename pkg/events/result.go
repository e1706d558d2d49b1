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

package events

// Result is what a listener hands back to the dispatch loop. It is either
// Continue(value) or Cancel(value). The zero Result is Continue(false).
type Result struct {
	canceled bool
	value    bool
}

// CancelEvent stops the current emission. The aggregate becomes false.
var CancelEvent = Cancel(false)

// Continue lets the emission go on and contributes value to the aggregate.
func Continue(value bool) Result {
	return Result{value: value}
}

// Cancel stops the current emission, later listeners are not invoked and
// the aggregate becomes value.
func Cancel(value bool) Result {
	return Result{canceled: true, value: value}
}

func (r Result) Value() bool {
	return r.value
}

func (r Result) Canceled() bool {
	return r.canceled
}

// AsyncResult is delivered once by EmitAsync.
type AsyncResult struct {
	Value  bool
	Queued bool
	Err    error
}

type outcome struct {
	queued   bool
	checked  bool
	listened bool
	canceled bool
	value    bool
}
