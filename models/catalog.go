package models

// HasAccess reports whether role may open the course. A course with an
// empty allowed-roles list is accessible to nobody, and an invalid or
// empty role never gains access.
func (c Course) HasAccess(role Role) bool {
	for _, allowed := range c.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// FilterByRole returns the courses of catalog visible to role, preserving
// the catalog's original order.
func FilterByRole(catalog []Course, role Role) []Course {
	filtered := make([]Course, 0, len(catalog))
	for _, course := range catalog {
		if course.HasAccess(role) {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

// ClassByID looks up a class anywhere in the course's module tree.
// Returns nil when no class has that id.
func (c Course) ClassByID(classID uint) *Class {
	for mi := range c.Modules {
		for ci := range c.Modules[mi].Classes {
			if c.Modules[mi].Classes[ci].ID == classID {
				return &c.Modules[mi].Classes[ci]
			}
		}
	}
	return nil
}

// NextClass returns the class that follows currentClassID in
// module-then-class order, or nil when the current class is the last one
// or is not part of the course. The walk is recomputed from the live
// module ordering on every call.
func (c Course) NextClass(currentClassID uint) *Class {
	foundCurrent := false
	for mi := range c.Modules {
		for ci := range c.Modules[mi].Classes {
			if foundCurrent {
				return &c.Modules[mi].Classes[ci]
			}
			if c.Modules[mi].Classes[ci].ID == currentClassID {
				foundCurrent = true
			}
		}
	}
	return nil
}
