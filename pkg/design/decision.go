package design

// Test evaluates the decision rule for a complete observation: the null is
// rejected iff x1 + x2 > c(x1), boundary inclusive on the keep side.
func (d *Design) Test(x1, x2 int) (bool, error) {
	if err := d.checkOutcome(x1, x2); err != nil {
		return false, err
	}
	return d.c[x1].RejectsSum(x1 + x2), nil
}
