package dxtex

// formatClass is a bit set of format classification properties.
type formatClass uint16

const (
	classCompressed formatClass = 1 << iota
	classPacked
	classVideo
	classPlanar
	classPalettized
	classDepthStencil
	classSRGB
	classBGR
	classTypeless
	classPartialTypeless
	classAlpha
)

// formatInfo holds everything derivable about one format. Partner formats
// left as FormatUnknown mean "no such variant".
type formatInfo struct {
	name          string
	bpp           uint16
	bpc           uint8
	dataType      FormatType
	class         formatClass
	srgb          Format
	linear        Format
	typeless      Format
	typelessUNORM Format
	typelessFLOAT Format
}

// formatTable is indexed by Format. Gaps in DXGI numbering stay zero.
var formatTable = [...]formatInfo{
	FormatUnknown:                            {name: "UNKNOWN"},
	FormatR32G32B32A32Typeless:               {name: "R32G32B32A32_TYPELESS", bpp: 128, bpc: 32, class: classTypeless | classAlpha, typelessFLOAT: FormatR32G32B32A32Float},
	FormatR32G32B32A32Float:                  {name: "R32G32B32A32_FLOAT", bpp: 128, bpc: 32, dataType: FormatTypeFloat, class: classAlpha, typeless: FormatR32G32B32A32Typeless},
	FormatR32G32B32A32Uint:                   {name: "R32G32B32A32_UINT", bpp: 128, bpc: 32, dataType: FormatTypeUINT, class: classAlpha, typeless: FormatR32G32B32A32Typeless},
	FormatR32G32B32A32Sint:                   {name: "R32G32B32A32_SINT", bpp: 128, bpc: 32, dataType: FormatTypeSINT, class: classAlpha, typeless: FormatR32G32B32A32Typeless},
	FormatR32G32B32Typeless:                  {name: "R32G32B32_TYPELESS", bpp: 96, bpc: 32, class: classTypeless, typelessFLOAT: FormatR32G32B32Float},
	FormatR32G32B32Float:                     {name: "R32G32B32_FLOAT", bpp: 96, bpc: 32, dataType: FormatTypeFloat, typeless: FormatR32G32B32Typeless},
	FormatR32G32B32Uint:                      {name: "R32G32B32_UINT", bpp: 96, bpc: 32, dataType: FormatTypeUINT, typeless: FormatR32G32B32Typeless},
	FormatR32G32B32Sint:                      {name: "R32G32B32_SINT", bpp: 96, bpc: 32, dataType: FormatTypeSINT, typeless: FormatR32G32B32Typeless},
	FormatR16G16B16A16Typeless:               {name: "R16G16B16A16_TYPELESS", bpp: 64, bpc: 16, class: classTypeless | classAlpha, typelessUNORM: FormatR16G16B16A16Unorm, typelessFLOAT: FormatR16G16B16A16Float},
	FormatR16G16B16A16Float:                  {name: "R16G16B16A16_FLOAT", bpp: 64, bpc: 16, dataType: FormatTypeFloat, class: classAlpha, typeless: FormatR16G16B16A16Typeless},
	FormatR16G16B16A16Unorm:                  {name: "R16G16B16A16_UNORM", bpp: 64, bpc: 16, dataType: FormatTypeUNORM, class: classAlpha, typeless: FormatR16G16B16A16Typeless},
	FormatR16G16B16A16Uint:                   {name: "R16G16B16A16_UINT", bpp: 64, bpc: 16, dataType: FormatTypeUINT, class: classAlpha, typeless: FormatR16G16B16A16Typeless},
	FormatR16G16B16A16Snorm:                  {name: "R16G16B16A16_SNORM", bpp: 64, bpc: 16, dataType: FormatTypeSNORM, class: classAlpha, typeless: FormatR16G16B16A16Typeless},
	FormatR16G16B16A16Sint:                   {name: "R16G16B16A16_SINT", bpp: 64, bpc: 16, dataType: FormatTypeSINT, class: classAlpha, typeless: FormatR16G16B16A16Typeless},
	FormatR32G32Typeless:                     {name: "R32G32_TYPELESS", bpp: 64, bpc: 32, class: classTypeless, typelessFLOAT: FormatR32G32Float},
	FormatR32G32Float:                        {name: "R32G32_FLOAT", bpp: 64, bpc: 32, dataType: FormatTypeFloat, typeless: FormatR32G32Typeless},
	FormatR32G32Uint:                         {name: "R32G32_UINT", bpp: 64, bpc: 32, dataType: FormatTypeUINT, typeless: FormatR32G32Typeless},
	FormatR32G32Sint:                         {name: "R32G32_SINT", bpp: 64, bpc: 32, dataType: FormatTypeSINT, typeless: FormatR32G32Typeless},
	FormatR32G8X24Typeless:                   {name: "R32G8X24_TYPELESS", bpp: 64, bpc: 32, class: classTypeless | classDepthStencil},
	FormatD32FloatS8X24Uint:                  {name: "D32_FLOAT_S8X24_UINT", bpp: 64, bpc: 32, class: classDepthStencil, typeless: FormatR32G8X24Typeless},
	FormatR32FloatX8X24Typeless:              {name: "R32_FLOAT_X8X24_TYPELESS", bpp: 64, bpc: 32, dataType: FormatTypeFloat, class: classPartialTypeless | classDepthStencil, typeless: FormatR32G8X24Typeless},
	FormatX32TypelessG8X24Uint:               {name: "X32_TYPELESS_G8X24_UINT", bpp: 64, bpc: 32, dataType: FormatTypeUINT, class: classPartialTypeless | classDepthStencil, typeless: FormatR32G8X24Typeless},
	FormatR10G10B10A2Typeless:                {name: "R10G10B10A2_TYPELESS", bpp: 32, bpc: 10, class: classTypeless | classAlpha, typelessUNORM: FormatR10G10B10A2Unorm},
	FormatR10G10B10A2Unorm:                   {name: "R10G10B10A2_UNORM", bpp: 32, bpc: 10, dataType: FormatTypeUNORM, class: classAlpha, typeless: FormatR10G10B10A2Typeless},
	FormatR10G10B10A2Uint:                    {name: "R10G10B10A2_UINT", bpp: 32, bpc: 10, dataType: FormatTypeUINT, class: classAlpha, typeless: FormatR10G10B10A2Typeless},
	FormatR11G11B10Float:                     {name: "R11G11B10_FLOAT", bpp: 32, bpc: 11, dataType: FormatTypeFloat},
	FormatR8G8B8A8Typeless:                   {name: "R8G8B8A8_TYPELESS", bpp: 32, bpc: 8, class: classTypeless | classAlpha, typelessUNORM: FormatR8G8B8A8Unorm},
	FormatR8G8B8A8Unorm:                      {name: "R8G8B8A8_UNORM", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classAlpha, srgb: FormatR8G8B8A8UnormSRGB, typeless: FormatR8G8B8A8Typeless},
	FormatR8G8B8A8UnormSRGB:                  {name: "R8G8B8A8_UNORM_SRGB", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classAlpha | classSRGB, linear: FormatR8G8B8A8Unorm, typeless: FormatR8G8B8A8Typeless},
	FormatR8G8B8A8Uint:                       {name: "R8G8B8A8_UINT", bpp: 32, bpc: 8, dataType: FormatTypeUINT, class: classAlpha, typeless: FormatR8G8B8A8Typeless},
	FormatR8G8B8A8Snorm:                      {name: "R8G8B8A8_SNORM", bpp: 32, bpc: 8, dataType: FormatTypeSNORM, class: classAlpha, typeless: FormatR8G8B8A8Typeless},
	FormatR8G8B8A8Sint:                       {name: "R8G8B8A8_SINT", bpp: 32, bpc: 8, dataType: FormatTypeSINT, class: classAlpha, typeless: FormatR8G8B8A8Typeless},
	FormatR16G16Typeless:                     {name: "R16G16_TYPELESS", bpp: 32, bpc: 16, class: classTypeless, typelessUNORM: FormatR16G16Unorm, typelessFLOAT: FormatR16G16Float},
	FormatR16G16Float:                        {name: "R16G16_FLOAT", bpp: 32, bpc: 16, dataType: FormatTypeFloat, typeless: FormatR16G16Typeless},
	FormatR16G16Unorm:                        {name: "R16G16_UNORM", bpp: 32, bpc: 16, dataType: FormatTypeUNORM, typeless: FormatR16G16Typeless},
	FormatR16G16Uint:                         {name: "R16G16_UINT", bpp: 32, bpc: 16, dataType: FormatTypeUINT, typeless: FormatR16G16Typeless},
	FormatR16G16Snorm:                        {name: "R16G16_SNORM", bpp: 32, bpc: 16, dataType: FormatTypeSNORM, typeless: FormatR16G16Typeless},
	FormatR16G16Sint:                         {name: "R16G16_SINT", bpp: 32, bpc: 16, dataType: FormatTypeSINT, typeless: FormatR16G16Typeless},
	FormatR32Typeless:                        {name: "R32_TYPELESS", bpp: 32, bpc: 32, class: classTypeless, typelessFLOAT: FormatR32Float},
	FormatD32Float:                           {name: "D32_FLOAT", bpp: 32, bpc: 32, dataType: FormatTypeFloat, class: classDepthStencil, typeless: FormatR32Typeless},
	FormatR32Float:                           {name: "R32_FLOAT", bpp: 32, bpc: 32, dataType: FormatTypeFloat, typeless: FormatR32Typeless},
	FormatR32Uint:                            {name: "R32_UINT", bpp: 32, bpc: 32, dataType: FormatTypeUINT, typeless: FormatR32Typeless},
	FormatR32Sint:                            {name: "R32_SINT", bpp: 32, bpc: 32, dataType: FormatTypeSINT, typeless: FormatR32Typeless},
	FormatR24G8Typeless:                      {name: "R24G8_TYPELESS", bpp: 32, bpc: 24, class: classTypeless | classDepthStencil},
	FormatD24UnormS8Uint:                     {name: "D24_UNORM_S8_UINT", bpp: 32, bpc: 24, dataType: FormatTypeUNORM, class: classDepthStencil, typeless: FormatR24G8Typeless},
	FormatR24UnormX8Typeless:                 {name: "R24_UNORM_X8_TYPELESS", bpp: 32, bpc: 24, dataType: FormatTypeUNORM, class: classPartialTypeless | classDepthStencil, typeless: FormatR24G8Typeless},
	FormatX24TypelessG8Uint:                  {name: "X24_TYPELESS_G8_UINT", bpp: 32, bpc: 24, dataType: FormatTypeUINT, class: classPartialTypeless | classDepthStencil, typeless: FormatR24G8Typeless},
	FormatR8G8Typeless:                       {name: "R8G8_TYPELESS", bpp: 16, bpc: 8, class: classTypeless, typelessUNORM: FormatR8G8Unorm},
	FormatR8G8Unorm:                          {name: "R8G8_UNORM", bpp: 16, bpc: 8, dataType: FormatTypeUNORM, typeless: FormatR8G8Typeless},
	FormatR8G8Uint:                           {name: "R8G8_UINT", bpp: 16, bpc: 8, dataType: FormatTypeUINT, typeless: FormatR8G8Typeless},
	FormatR8G8Snorm:                          {name: "R8G8_SNORM", bpp: 16, bpc: 8, dataType: FormatTypeSNORM, typeless: FormatR8G8Typeless},
	FormatR8G8Sint:                           {name: "R8G8_SINT", bpp: 16, bpc: 8, dataType: FormatTypeSINT, typeless: FormatR8G8Typeless},
	FormatR16Typeless:                        {name: "R16_TYPELESS", bpp: 16, bpc: 16, class: classTypeless, typelessUNORM: FormatR16Unorm, typelessFLOAT: FormatR16Float},
	FormatR16Float:                           {name: "R16_FLOAT", bpp: 16, bpc: 16, dataType: FormatTypeFloat, typeless: FormatR16Typeless},
	FormatD16Unorm:                           {name: "D16_UNORM", bpp: 16, bpc: 16, dataType: FormatTypeUNORM, class: classDepthStencil, typeless: FormatR16Typeless},
	FormatR16Unorm:                           {name: "R16_UNORM", bpp: 16, bpc: 16, dataType: FormatTypeUNORM, typeless: FormatR16Typeless},
	FormatR16Uint:                            {name: "R16_UINT", bpp: 16, bpc: 16, dataType: FormatTypeUINT, typeless: FormatR16Typeless},
	FormatR16Snorm:                           {name: "R16_SNORM", bpp: 16, bpc: 16, dataType: FormatTypeSNORM, typeless: FormatR16Typeless},
	FormatR16Sint:                            {name: "R16_SINT", bpp: 16, bpc: 16, dataType: FormatTypeSINT, typeless: FormatR16Typeless},
	FormatR8Typeless:                         {name: "R8_TYPELESS", bpp: 8, bpc: 8, class: classTypeless, typelessUNORM: FormatR8Unorm},
	FormatR8Unorm:                            {name: "R8_UNORM", bpp: 8, bpc: 8, dataType: FormatTypeUNORM, typeless: FormatR8Typeless},
	FormatR8Uint:                             {name: "R8_UINT", bpp: 8, bpc: 8, dataType: FormatTypeUINT, typeless: FormatR8Typeless},
	FormatR8Snorm:                            {name: "R8_SNORM", bpp: 8, bpc: 8, dataType: FormatTypeSNORM, typeless: FormatR8Typeless},
	FormatR8Sint:                             {name: "R8_SINT", bpp: 8, bpc: 8, dataType: FormatTypeSINT, typeless: FormatR8Typeless},
	FormatA8Unorm:                            {name: "A8_UNORM", bpp: 8, bpc: 8, dataType: FormatTypeUNORM, class: classAlpha},
	FormatR1Unorm:                            {name: "R1_UNORM", bpp: 1, bpc: 1, dataType: FormatTypeUNORM},
	FormatR9G9B9E5SharedExp:                  {name: "R9G9B9E5_SHAREDEXP", bpp: 32, bpc: 14, dataType: FormatTypeSharedExp},
	FormatR8G8B8G8Unorm:                      {name: "R8G8_B8G8_UNORM", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classPacked},
	FormatG8R8G8B8Unorm:                      {name: "G8R8_G8B8_UNORM", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classPacked},
	FormatBC1Typeless:                        {name: "BC1_TYPELESS", bpp: 4, bpc: 5, class: classCompressed | classTypeless | classAlpha, typelessUNORM: FormatBC1Unorm},
	FormatBC1Unorm:                           {name: "BC1_UNORM", bpp: 4, bpc: 5, dataType: FormatTypeUNORM, class: classCompressed | classAlpha, srgb: FormatBC1UnormSRGB, typeless: FormatBC1Typeless},
	FormatBC1UnormSRGB:                       {name: "BC1_UNORM_SRGB", bpp: 4, bpc: 5, dataType: FormatTypeUNORM, class: classCompressed | classAlpha | classSRGB, linear: FormatBC1Unorm, typeless: FormatBC1Typeless},
	FormatBC2Typeless:                        {name: "BC2_TYPELESS", bpp: 8, bpc: 5, class: classCompressed | classTypeless | classAlpha, typelessUNORM: FormatBC2Unorm},
	FormatBC2Unorm:                           {name: "BC2_UNORM", bpp: 8, bpc: 5, dataType: FormatTypeUNORM, class: classCompressed | classAlpha, srgb: FormatBC2UnormSRGB, typeless: FormatBC2Typeless},
	FormatBC2UnormSRGB:                       {name: "BC2_UNORM_SRGB", bpp: 8, bpc: 5, dataType: FormatTypeUNORM, class: classCompressed | classAlpha | classSRGB, linear: FormatBC2Unorm, typeless: FormatBC2Typeless},
	FormatBC3Typeless:                        {name: "BC3_TYPELESS", bpp: 8, bpc: 5, class: classCompressed | classTypeless | classAlpha, typelessUNORM: FormatBC3Unorm},
	FormatBC3Unorm:                           {name: "BC3_UNORM", bpp: 8, bpc: 5, dataType: FormatTypeUNORM, class: classCompressed | classAlpha, srgb: FormatBC3UnormSRGB, typeless: FormatBC3Typeless},
	FormatBC3UnormSRGB:                       {name: "BC3_UNORM_SRGB", bpp: 8, bpc: 5, dataType: FormatTypeUNORM, class: classCompressed | classAlpha | classSRGB, linear: FormatBC3Unorm, typeless: FormatBC3Typeless},
	FormatBC4Typeless:                        {name: "BC4_TYPELESS", bpp: 4, bpc: 8, class: classCompressed | classTypeless, typelessUNORM: FormatBC4Unorm},
	FormatBC4Unorm:                           {name: "BC4_UNORM", bpp: 4, bpc: 8, dataType: FormatTypeUNORM, class: classCompressed, typeless: FormatBC4Typeless},
	FormatBC4Snorm:                           {name: "BC4_SNORM", bpp: 4, bpc: 8, dataType: FormatTypeSNORM, class: classCompressed, typeless: FormatBC4Typeless},
	FormatBC5Typeless:                        {name: "BC5_TYPELESS", bpp: 8, bpc: 8, class: classCompressed | classTypeless, typelessUNORM: FormatBC5Unorm},
	FormatBC5Unorm:                           {name: "BC5_UNORM", bpp: 8, bpc: 8, dataType: FormatTypeUNORM, class: classCompressed, typeless: FormatBC5Typeless},
	FormatBC5Snorm:                           {name: "BC5_SNORM", bpp: 8, bpc: 8, dataType: FormatTypeSNORM, class: classCompressed, typeless: FormatBC5Typeless},
	FormatB5G6R5Unorm:                        {name: "B5G6R5_UNORM", bpp: 16, bpc: 6, dataType: FormatTypeUNORM, class: classBGR},
	FormatB5G5R5A1Unorm:                      {name: "B5G5R5A1_UNORM", bpp: 16, bpc: 5, dataType: FormatTypeUNORM, class: classBGR | classAlpha},
	FormatB8G8R8A8Unorm:                      {name: "B8G8R8A8_UNORM", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classBGR | classAlpha, srgb: FormatB8G8R8A8UnormSRGB, typeless: FormatB8G8R8A8Typeless},
	FormatB8G8R8X8Unorm:                      {name: "B8G8R8X8_UNORM", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classBGR, srgb: FormatB8G8R8X8UnormSRGB, typeless: FormatB8G8R8X8Typeless},
	FormatR10G10B10XRBiasA2Unorm:             {name: "R10G10B10_XR_BIAS_A2_UNORM", bpp: 32, bpc: 10, dataType: FormatTypeUNORM, class: classAlpha},
	FormatB8G8R8A8Typeless:                   {name: "B8G8R8A8_TYPELESS", bpp: 32, bpc: 8, class: classBGR | classTypeless | classAlpha, typelessUNORM: FormatB8G8R8A8Unorm},
	FormatB8G8R8A8UnormSRGB:                  {name: "B8G8R8A8_UNORM_SRGB", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classBGR | classAlpha | classSRGB, linear: FormatB8G8R8A8Unorm, typeless: FormatB8G8R8A8Typeless},
	FormatB8G8R8X8Typeless:                   {name: "B8G8R8X8_TYPELESS", bpp: 32, bpc: 8, class: classBGR | classTypeless, typelessUNORM: FormatB8G8R8X8Unorm},
	FormatB8G8R8X8UnormSRGB:                  {name: "B8G8R8X8_UNORM_SRGB", bpp: 32, bpc: 8, dataType: FormatTypeUNORM, class: classBGR | classSRGB, linear: FormatB8G8R8X8Unorm, typeless: FormatB8G8R8X8Typeless},
	FormatBC6HTypeless:                       {name: "BC6H_TYPELESS", bpp: 8, bpc: 16, class: classCompressed | classTypeless},
	FormatBC6HUF16:                           {name: "BC6H_UF16", bpp: 8, bpc: 16, dataType: FormatTypeFloat, class: classCompressed, typeless: FormatBC6HTypeless},
	FormatBC6HSF16:                           {name: "BC6H_SF16", bpp: 8, bpc: 16, dataType: FormatTypeFloat, class: classCompressed, typeless: FormatBC6HTypeless},
	FormatBC7Typeless:                        {name: "BC7_TYPELESS", bpp: 8, bpc: 8, class: classCompressed | classTypeless | classAlpha, typelessUNORM: FormatBC7Unorm},
	FormatBC7Unorm:                           {name: "BC7_UNORM", bpp: 8, bpc: 8, dataType: FormatTypeUNORM, class: classCompressed | classAlpha, srgb: FormatBC7UnormSRGB, typeless: FormatBC7Typeless},
	FormatBC7UnormSRGB:                       {name: "BC7_UNORM_SRGB", bpp: 8, bpc: 8, dataType: FormatTypeUNORM, class: classCompressed | classAlpha | classSRGB, linear: FormatBC7Unorm, typeless: FormatBC7Typeless},
	FormatAYUV:                               {name: "AYUV", bpp: 32, bpc: 8, class: classVideo | classAlpha},
	FormatY410:                               {name: "Y410", bpp: 32, bpc: 10, class: classVideo | classAlpha},
	FormatY416:                               {name: "Y416", bpp: 64, bpc: 16, class: classVideo | classAlpha},
	FormatNV12:                               {name: "NV12", bpp: 12, bpc: 8, class: classVideo | classPlanar},
	FormatP010:                               {name: "P010", bpp: 24, bpc: 10, class: classVideo | classPlanar},
	FormatP016:                               {name: "P016", bpp: 24, bpc: 16, class: classVideo | classPlanar},
	FormatOpaque420:                          {name: "420_OPAQUE", bpp: 12, bpc: 8, class: classVideo | classPlanar},
	FormatYUY2:                               {name: "YUY2", bpp: 32, bpc: 8, class: classVideo | classPacked},
	FormatY210:                               {name: "Y210", bpp: 64, bpc: 10, class: classVideo | classPacked},
	FormatY216:                               {name: "Y216", bpp: 64, bpc: 16, class: classVideo | classPacked},
	FormatNV11:                               {name: "NV11", bpp: 12, bpc: 8, class: classVideo | classPlanar},
	FormatAI44:                               {name: "AI44", bpp: 8, bpc: 4, class: classVideo | classPalettized | classAlpha},
	FormatIA44:                               {name: "IA44", bpp: 8, bpc: 4, class: classVideo | classPalettized | classAlpha},
	FormatP8:                                 {name: "P8", bpp: 8, bpc: 8, class: classVideo | classPalettized},
	FormatA8P8:                               {name: "A8P8", bpp: 16, bpc: 8, class: classVideo | classPalettized | classAlpha},
	FormatB4G4R4A4Unorm:                      {name: "B4G4R4A4_UNORM", bpp: 16, bpc: 4, dataType: FormatTypeUNORM, class: classBGR | classAlpha},
	FormatP208:                               {name: "P208", bpp: 16, bpc: 8, class: classVideo | classPlanar},
	FormatV208:                               {name: "V208", bpp: 16, bpc: 8, class: classVideo | classPlanar},
	FormatV408:                               {name: "V408", bpp: 24, bpc: 8, class: classVideo | classPlanar},
	FormatSamplerFeedbackMinMipOpaque:        {name: "SAMPLER_FEEDBACK_MIN_MIP_OPAQUE"},
	FormatSamplerFeedbackMipRegionUsedOpaque: {name: "SAMPLER_FEEDBACK_MIP_REGION_USED_OPAQUE"},
	FormatA4B4G4R4Unorm:                      {name: "A4B4G4R4_UNORM", bpp: 16, bpc: 4, dataType: FormatTypeUNORM, class: classAlpha},
}
