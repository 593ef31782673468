// Package catalog defines the data model of the CrabCamera demonstration
// report: the plugin description, the Tauri command surface, technical
// specifications, and competitive advantages. The content is fixed literal
// data; Default returns a fresh copy so callers can never corrupt it.
package catalog

import (
	"fmt"
	"strings"
)

// Command describes one Tauri command exposed by the plugin.
type Command struct {
	Name   string   `json:"name" mapstructure:"name"`
	Args   []string `json:"args,omitempty" mapstructure:"args"`
	Result string   `json:"result" mapstructure:"result"`
}

// Signature renders the command in the Rust-flavored form used by the
// original demo, e.g. "capture_single_photo(device_id, format) -> Result<CameraFrame>".
func (c Command) Signature() string {
	return fmt.Sprintf("%s(%s) -> Result<%s>", c.Name, strings.Join(c.Args, ", "), c.Result)
}

// Spec is a single technical-specification line (label: value).
type Spec struct {
	Label string `json:"label" mapstructure:"label"`
	Value string `json:"value" mapstructure:"value"`
}

func (s Spec) String() string {
	return s.Label + ": " + s.Value
}

// Catalog is the full content of the demonstration report.
type Catalog struct {
	Title       string    `json:"title"`
	Integration string    `json:"integration"`
	Commands    []Command `json:"commands"`
	Specs       []Spec    `json:"specs"`
	Advantages  []string  `json:"advantages"`
}

// Default returns the demonstration catalog. Every call returns fresh
// slices, so the result is safe to mutate.
func Default() Catalog {
	return Catalog{
		Title:       "🦀📷 CRABCAMERA - Cross-Platform Camera Plugin for Tauri",
		Integration: integrationBlock,
		Commands: []Command{
			{Name: "initialize_camera_system", Result: "String"},
			{Name: "get_available_cameras", Result: "Vec<CameraDeviceInfo>"},
			{Name: "get_platform_info", Result: "PlatformInfo"},
			{Name: "test_camera_system", Result: "SystemTestResult"},
			{Name: "check_camera_availability", Args: []string{"device_id"}, Result: "bool"},
			{Name: "get_camera_formats", Args: []string{"device_id"}, Result: "Vec<CameraFormat>"},
			{Name: "capture_single_photo", Args: []string{"device_id", "format"}, Result: "CameraFrame"},
			{Name: "start_camera_preview", Args: []string{"device_id"}, Result: "()"},
			{Name: "stop_camera_preview", Result: "()"},
			{Name: "request_camera_permission", Result: "bool"},
		},
		Specs: []Spec{
			{Label: "Language", Value: "Rust (memory-safe, zero-cost abstractions)"},
			{Label: "Framework", Value: "Tauri 2.0 plugin architecture"},
			{Label: "Platforms", Value: "Windows, macOS, Linux desktop"},
			{Label: "Camera Backend", Value: "nokhwa (cross-platform camera library)"},
			{Label: "Async Runtime", Value: "Tokio (production-grade async)"},
			{Label: "Testing", Value: "63 unit + integration tests"},
			{Label: "Performance", Value: "Zero-copy where possible"},
			{Label: "Memory", Value: "Automatic cleanup and resource management"},
		},
		Advantages: []string{
			"First production-ready desktop Tauri camera plugin",
			"Native performance vs web API limitations",
			"Cross-platform abstraction with platform optimizations",
			"Professional error handling and recovery",
			"Modern async/await API design",
			"Comprehensive test coverage",
			"Memory-safe Rust implementation",
			"MIT licensed and community-friendly",
		},
	}
}

// integrationBlock is printed verbatim between the title and the command
// catalog. It is a literal transcription of the original demo text.
const integrationBlock = `
🏗️  TAURI APPLICATION INTEGRATION:

📁 src-tauri/
  ├── Cargo.toml
  │   [dependencies]
  │   crabcamera = "0.1"
  │   tauri = { version = "2.0", features = ["protocol-asset"] }
  │
  ├── src/main.rs
  │   use crabcamera;
  │   
  │   fn main() {
  │       tauri::Builder::default()
  │           .plugin(crabcamera::init())
  │           .run(tauri::generate_context!())
  │           .expect("error while running tauri application");
  │   }
  │
  └── tauri.conf.json
      {
        "plugins": {
          "crabcamera": {}
        }
      }

🌐 FRONTEND INTEGRATION (JavaScript/TypeScript):

import { invoke } from '@tauri-apps/api/tauri';

// Initialize camera system
await invoke('initialize_camera_system');

// Get available cameras  
const cameras = await invoke('get_available_cameras');
console.log('Available cameras:', cameras);

// Get platform-optimized format
const format = await invoke('get_recommended_format');
console.log('Recommended format:', format);

// Capture single photo
const photo = await invoke('capture_single_photo', {
  deviceId: cameras[0].id,
  format: format
});

📷 CAMERA CAPABILITIES:

✅ Cross-Platform Support:
  • Windows (DirectShow/MediaFoundation)  
  • macOS (AVFoundation)
  • Linux (V4L2)

✅ Professional Features:
  • High-resolution capture (up to 4K)
  • Multiple format support (RGB8, JPEG, RAW)
  • Real-time streaming
  • Auto-focus and auto-exposure
  • Device enumeration and selection

✅ Developer Experience:
  • Type-safe Rust API
  • Async/await support  
  • Comprehensive error handling
  • Production-ready testing (63 tests)
  • Full Tauri 2.0 integration

🎯 USE CASES:

✅ Desktop Photography Apps
  • Photo booth applications
  • Document scanning tools
  • Security/surveillance apps
  • Video conferencing tools

✅ Professional Applications  
  • Medical imaging interfaces
  • Scientific data collection
  • Industrial inspection tools
  • Quality control systems

✅ Creative Software
  • Photo editing applications
  • Content creation tools
  • Streaming software interfaces
  • Educational applications

🚀 PRODUCTION READY:
  • 63 comprehensive tests passing
  • Cross-platform compatibility tested
  • Memory-safe Rust implementation
  • Professional error handling
  • Full async/await support
  • Modern Tauri 2.0 plugin architecture
`
