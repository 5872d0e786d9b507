// Package vk holds the small Vulkan-facing value types shared across the
// layer model: dotted version numbers, the supported-platform bitmask, and
// the layer/setting maturity status.
//
// These types are deliberately free of any dependency on the settings model
// so they can be imported from every other internal package.
package vk
