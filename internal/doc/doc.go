// Package doc generates self-contained HTML documentation for a Vulkan
// layer: its metadata, a settings overview table, per-setting detail
// sections and preset listings.
//
// Generation is a pure traversal of the layer's immutable settings tree;
// the only side effect is handing the finished document to a Writer. A
// target that cannot be written surfaces as an error to the caller.
package doc
