package roles

import "testing"

func TestParseKnownRoles(t *testing.T) {
	for _, s := range []string{"client", "admin", "receptionist", "stylist"} {
		r, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", s, err)
		}
		if string(r) != s {
			t.Fatalf("Parse(%q) = %q", s, r)
		}
	}
}

func TestParseUnknownRoleIsDenied(t *testing.T) {
	for _, s := range []string{"", "owner", "superadmin", "CLIENT"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) should fail", s)
		}
	}
}

func TestPermissionTables(t *testing.T) {
	if !Admin.Staff() || !Receptionist.Staff() {
		t.Fatal("admin and receptionist are staff")
	}
	if Client.Staff() || Stylist.Staff() {
		t.Fatal("client and stylist are not staff")
	}
	if !Admin.ManagesCatalog() || Receptionist.ManagesCatalog() {
		t.Fatal("only admin manages the catalog")
	}
	if Client.ModeratesStatus() {
		t.Fatal("clients cannot moderate status")
	}
	if !Stylist.ModeratesStatus() {
		t.Fatal("stylists moderate their own appointments")
	}
}
