// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"devportfolio/internal/models"
)

func TestSiteSettingGetOrCreateDefaults(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	// Work against whatever state exists; only assert on the created case.
	existing, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if existing == nil {
		st, err := s.GetOrCreate()
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		if st.SiteName != models.DefaultSiteName {
			t.Errorf("site name: got %q, want %q", st.SiteName, models.DefaultSiteName)
		}
		if st.SiteDescription != models.DefaultSiteDescription {
			t.Errorf("site description: got %q, want %q", st.SiteDescription, models.DefaultSiteDescription)
		}
	}

	// A second call never creates a second row.
	if _, err := s.GetOrCreate(); err != nil {
		t.Fatalf("GetOrCreate (second): %v", err)
	}
	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count: got %d, want 1", count)
	}
}

func TestSiteSettingSaveMergesOntoSingleton(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	original, err := s.GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	t.Cleanup(func() {
		s.Save(original)
	})

	// Saving a value with a fresh identity must update the existing row,
	// not add one.
	incoming := &models.SiteSetting{
		SiteName:         "Merged Name",
		SiteDescription:  "Merged description",
		Logo:             "uploads/logo.png",
		DefaultHeroImage: "uploads/hero.jpg",
	}
	saved, err := s.Save(incoming)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if saved.ID != original.ID {
		t.Errorf("identity changed: got %s, want %s", saved.ID, original.ID)
	}
	if saved.SiteName != "Merged Name" {
		t.Errorf("site name: got %q, want %q", saved.SiteName, "Merged Name")
	}
	if saved.Logo != "uploads/logo.png" {
		t.Errorf("logo: got %q, want %q", saved.Logo, "uploads/logo.png")
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count after merge: got %d, want 1", count)
	}
}
