package rav1e

// PartitionType describes how a block is split into sub-blocks.
type PartitionType int

const (
	PartitionNone PartitionType = iota
	PartitionHorz
	PartitionVert
	PartitionSplit
	PartitionHorzA // HORZ split and the top partition is split again
	PartitionHorzB // HORZ split and the bottom partition is split again
	PartitionVertA // VERT split and the left partition is split again
	PartitionVertB // VERT split and the right partition is split again
	PartitionHorz4 // 4:1 horizontal strip split
	PartitionVert4 // 4:1 vertical strip split
	PartitionInvalid
)

// ExtPartitionTypes is the number of valid partition types.
const ExtPartitionTypes = 10

// PartitionTypes is the number of partition types signalable without
// extended partitions.
const PartitionTypes = 4

// BasePartitionTypes lists the partitions the encoder searches by default.
var BasePartitionTypes = []PartitionType{
	PartitionNone, PartitionHorz, PartitionVert, PartitionSplit,
}

// subsizeLookup is total over the (partition, block size) cross-product.
// Every illegal combination holds BlockInvalid rather than a wrong size.
var subsizeLookup = [ExtPartitionTypes][BlockSizesAll]BlockSize{
	PartitionNone: {
		Block4x4,
		Block4x8, Block8x4, Block8x8,
		Block8x16, Block16x8, Block16x16,
		Block16x32, Block32x16, Block32x32,
		Block32x64, Block64x32, Block64x64,
		Block64x128, Block128x64, Block128x128,
		Block4x16, Block16x4, Block8x32,
		Block32x8, Block16x64, Block64x16,
	},
	PartitionHorz: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block8x4,
		BlockInvalid, BlockInvalid, Block16x8,
		BlockInvalid, BlockInvalid, Block32x16,
		BlockInvalid, BlockInvalid, Block64x32,
		BlockInvalid, BlockInvalid, Block128x64,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionVert: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block4x8,
		BlockInvalid, BlockInvalid, Block8x16,
		BlockInvalid, BlockInvalid, Block16x32,
		BlockInvalid, BlockInvalid, Block32x64,
		BlockInvalid, BlockInvalid, Block64x128,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionSplit: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block4x4,
		BlockInvalid, BlockInvalid, Block8x8,
		BlockInvalid, BlockInvalid, Block16x16,
		BlockInvalid, BlockInvalid, Block32x32,
		BlockInvalid, BlockInvalid, Block64x64,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionHorzA: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block8x4,
		BlockInvalid, BlockInvalid, Block16x8,
		BlockInvalid, BlockInvalid, Block32x16,
		BlockInvalid, BlockInvalid, Block64x32,
		BlockInvalid, BlockInvalid, Block128x64,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionHorzB: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block8x4,
		BlockInvalid, BlockInvalid, Block16x8,
		BlockInvalid, BlockInvalid, Block32x16,
		BlockInvalid, BlockInvalid, Block64x32,
		BlockInvalid, BlockInvalid, Block128x64,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionVertA: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block4x8,
		BlockInvalid, BlockInvalid, Block8x16,
		BlockInvalid, BlockInvalid, Block16x32,
		BlockInvalid, BlockInvalid, Block32x64,
		BlockInvalid, BlockInvalid, Block64x128,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionVertB: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, Block4x8,
		BlockInvalid, BlockInvalid, Block8x16,
		BlockInvalid, BlockInvalid, Block16x32,
		BlockInvalid, BlockInvalid, Block32x64,
		BlockInvalid, BlockInvalid, Block64x128,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionHorz4: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, Block16x4,
		BlockInvalid, BlockInvalid, Block32x8,
		BlockInvalid, BlockInvalid, Block64x16,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
	PartitionVert4: {
		BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, Block4x16,
		BlockInvalid, BlockInvalid, Block8x32,
		BlockInvalid, BlockInvalid, Block16x64,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
		BlockInvalid, BlockInvalid, BlockInvalid,
	},
}
