// Package engine combines the line store and the cursor set into the
// editing facade used by the control loop and by scripts.
//
// Every edit is applied to all cursors through the cursor package's ordering
// rules. Navigation only affects the primary cursor.
package engine
