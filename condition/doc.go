/*
 * Copyright 2025 The RuleGo Authors.
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
 */

/*
Package condition provides row filtering for the arrayagg engine.

Filters are boolean expressions compiled once with the expr-lang library
and evaluated per record against its field map:

	cond, err := condition.NewExprCondition(`category == "sensor" && value != nil`)
	if cond.Evaluate(record) { ... }

Beyond the expr-lang builtins the package registers:

  - like_match(text, pattern) — SQL LIKE matching with % and _ wildcards
  - is_null(x) / not_null(x) — SQL-style null checks

Undefined fields evaluate as nil rather than failing compilation, so one
filter can serve heterogeneous records.
*/
package condition
