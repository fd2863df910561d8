package kasharian

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("KASHARIAN_DATA_DIR", "")
	t.Setenv("KASHARIAN_STORE", "")
	t.Setenv("KASHARIAN_SHOP_NAME", "")

	cfg := LoadConfig()
	if cfg.DataDir != ".kasharian" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, ".kasharian")
	}
	if cfg.StoreKind != "file" {
		t.Errorf("StoreKind = %q, want %q", cfg.StoreKind, "file")
	}
	if cfg.ShopName != DefaultShopName {
		t.Errorf("ShopName = %q, want %q", cfg.ShopName, DefaultShopName)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("KASHARIAN_DATA_DIR", "/tmp/ledger")
	t.Setenv("KASHARIAN_STORE", "sqlite")
	t.Setenv("KASHARIAN_SHOP_NAME", "TOKO MAKMUR")

	cfg := LoadConfig()
	if cfg.DataDir != "/tmp/ledger" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.StoreKind != "sqlite" {
		t.Errorf("StoreKind = %q", cfg.StoreKind)
	}
	if cfg.ShopName != "TOKO MAKMUR" {
		t.Errorf("ShopName = %q", cfg.ShopName)
	}
}
