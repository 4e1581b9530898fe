package testutil

import (
	"crypto/rsa"
	"encoding/hex"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BlindSignatureVector is one run of RSABSSA-SHA384-PSS-Randomized from
// RFC 9474, Appendix A.
type BlindSignatureVector struct {
	Key              *rsa.PrivateKey
	Message          []byte
	Salt             []byte
	Inv              []byte
	EncodedMessage   []byte
	BlindedMessage   []byte
	BlindedSignature []byte
	Signature        []byte
}

func BlindSignatureVectors() []BlindSignatureVector {
	key := rsaKeyHex{
		n: "aec4d69addc70b990ea66a5e70603b6fee27aafebd08f2d94cbe1250c556e047a928d635c3f45ee9b66d1bc628a03bac9b7c3f416fe20dabea8f3d7b4bbf7f963be335d2328d67e6c13ee4a8f955e05a3283720d3e1f139c38e43e0338ad058a9495c53377fc35be64d208f89b4aa721bf7f7d3fef837be2a80e0f8adf0bcd1eec5bb040443a2b2792fdca522a7472aed74f31a1ebe1eebc1f408660a0543dfe2a850f106a617ec6685573702eaaa21a5640a5dcaf9b74e397fa3af18a2f1b7c03ba91a6336158de420d63188ee143866ee415735d155b7c2d854d795b7bc236cffd71542df34234221a0413e142d8c61355cc44d45bda94204974557ac2704cd8b593f035a5724b1adf442e78c542cd4414fce6f1298182fb6d8e53cef1adfd2e90e1e4deec52999bdc6c29144e8d52a125232c8c6d75c706ea3cc06841c7bda33568c63a6c03817f722b50fcf898237d788a4400869e44d90a3020923dc646388abcc914315215fcd1bae11b1c751fd52443aac8f601087d8d42737c18a3fa11ecd4131ecae017ae0a14acfc4ef85b83c19fed33cfd1cd629da2c4c09e222b398e18d822f77bb378dea3cb360b605e5aa58b20edc29d000a66bd177c682a17e7eb12a63ef7c2e4183e0d898f3d6bf567ba8ae84f84f1d23bf8b8e261c3729e2fa6d07b832e07cddd1d14f55325c6f924267957121902dc19b3b32948bdead5",
		e: "010001",
		d: "0d43242aefe1fb2c13fbc66e20b678c4336d20b1808c558b6e62ad16a287077180b177e1f01b12f9c6cd6c52630257ccef26a45135a990928773f3bd2fc01a313f1dac97a51cec71cb1fd7efc7adffdeb05f1fb04812c924ed7f4a8269925dad88bd7dcfbc4ef01020ebfc60cb3e04c54f981fdbd273e69a8a58b8ceb7c2d83fbcbd6f784d052201b88a9848186f2a45c0d2826870733e6fd9aa46983e0a6e82e35ca20a439c5ee7b502a9062e1066493bdadf8b49eb30d9558ed85abc7afb29b3c9bc644199654a4676681af4babcea4e6f71fe4565c9c1b85d9985b84ec1abf1a820a9bbebee0df1398aae2c85ab580a9f13e7743afd3108eb32100b870648fa6bc17e8abac4d3c99246b1f0ea9f7f93a5dd5458c56d9f3f81ff2216b3c3680a13591673c43194d8e6fc93fc1e37ce2986bd628ac48088bc723d8fbe293861ca7a9f4a73e9fa63b1b6d0074f5dea2a624c5249ff3ad811b6255b299d6bc5451ba7477f19c5a0db690c3e6476398b1483d10314afd38bbaf6e2fbdbcd62c3ca9797a420ca6034ec0a83360a3ee2adf4b9d4ba29731d131b099a38d6a23cc463db754603211260e99d19affc902c915d7854554aabf608e3ac52c19b8aa26ae042249b17b2d29669b5c859103ee53ef9bdc73ba3c6b537d5c34b6d8f034671d7f3a8a6966cc4543df223565343154140fd7391c7e7be03e241f4ecfeb877a051",
		p: "e1f4d7a34802e27c7392a3cea32a262a34dc3691bd87f3f310dc75673488930559c120fd0410194fb8a0da55bd0b81227e843fdca6692ae80e5a5d414116d4803fca7d8c30eaaae57e44a1816ebb5c5b0606c536246c7f11985d731684150b63c9a3ad9e41b04c0b5b27cb188a692c84696b742a80d3cd00ab891f2457443dadfeba6d6daf108602be26d7071803c67105a5426838e6889d77e8474b29244cefaf418e381b312048b457d73419213063c60ee7b0d81820165864fef93523c9635c22210956e53a8d96322493ffc58d845368e2416e078e5bcb5d2fd68ae6acfa54f9627c42e84a9d3f2774017e32ebca06308a12ecc290c7cd1156dcccfb2311",
		q: "c601a9caea66dc3835827b539db9df6f6f5ae77244692780cd334a006ab353c806426b60718c05245650821d39445d3ab591ed10a7339f15d83fe13f6a3dfb20b9452c6a9b42eaa62a68c970df3cadb2139f804ad8223d56108dfde30ba7d367e9b0a7a80c4fdba2fd9dde6661fc73fc2947569d2029f2870fc02d8325acf28c9afa19ecf962daa7916e21afad09eb62fe9f1cf91b77dc879b7974b490d3ebd2e95426057f35d0a3c9f45f79ac727ab81a519a8b9285932d9b2e5ccd347e59f3f32ad9ca359115e7da008ab7406707bd0e8e185a5ed8758b5ba266e8828f8d863ae133846304a2936ad7bc7c9803879d2fc4a28e69291d73dbd799f8bc238385",
	}
	return []BlindSignatureVector{
		{
			Key:              key.privateKey(),
			Message:          mustHex("8f3dc6fb8c4a02f4d6352edf0907822c1210a9b32f9bdda4c45a698c80023aa6b59f8cfec5fdbb36331372ebefedae7d"),
			Salt:             mustHex("051722b35f458781397c3a671a7d3bd3096503940e4c4f1aaa269d60300ce449555cd7340100df9d46944c5356825abf"),
			Inv:              mustHex("80682c48982407b489d53d1261b19ec8627d02b8cda5336750b8cee332ae260de57b02d72609c1e0e9f28e2040fc65b6f02d56dbd6aa9af8fde656f70495dfb723ba01173d4707a12fddac628ca29f3e32340bd8f7ddb557cf819f6b01e445ad96f874ba235584ee71f6581f62d4f43bf03f910f6510deb85e8ef06c7f09d9794a008be7ff2529f0ebb69decef646387dc767b74939265fec0223aa6d84d2a8a1cc912d5ca25b4e144ab8f6ba054b54910176d5737a2cff011da431bd5f2a0d2d66b9e70b39f4b050e45c0d9c16f02deda9ddf2d00f3e4b01037d7029cd49c2d46a8e1fc2c0c17520af1f4b5e25ba396afc4cd60c494a4c426448b35b49635b337cfb08e7c22a39b256dd032c00adddafb51a627f99a0e1704170ac1f1912e49d9db10ec04c19c58f420212973e0cb329524223a6aa56c7937c5dffdb5d966b6cd4cbc26f3201dd25c80960a1a111b32947bb78973d269fac7f5186530930ed19f68507540eed9e1bab8b00f00d8ca09b3f099aae46180e04e3584bd7ca054df18a1504b89d1d1675d0966c4ae1407be325cdf623cf13ff13e4a28b594d59e3eadbadf6136eee7a59d6a444c9eb4e2198e8a974f27a39eb63af2c9af3870488b8adaad444674f512133ad80b9220e09158521614f1faadfe8505ef57b7df6813048603f0dd04f4280177a11380fbfc861dbcbd7418d62155248dad5fdec0991f"),
			EncodedMessage:   mustHex("6e0c464d9c2f9fbc147b43570fc4f238e0d0b38870b3addcf7a4217df912ccef17a7f629aa850f63a063925f312d61d6437be954b45025e8282f9c0b1131bc8ff19a8a928d859b37113db1064f92a27f64761c181c1e1f9b251ae5a2f8a4047573b67a270584e089beadcb13e7c82337797119712e9b849ff56e04385d144d3ca9d8d92bf78adb20b5bbeb3685f17038ec6afade3ef354429c51c687b45a7018ee3a6966b3af15c9ba8f40e6461ba0a17ef5a799672ad882bab02b518f9da7c1a962945c2e9b0f02f29b31b9cdf3e633f9d9d2a22e96e1de28e25241ca7dd04147112f578973403e0f4fd80865965475d22294f065e17a1c4a201de93bd14223e6b1b999fd548f2f759f52db71964528b6f15b9c2d7811f2a0a35d534b8216301c47f4f04f412cae142b48c4cdff78bc54df690fd43142d750c671dd8e2e938e6a440b2f825b6dbb3e19f1d7a3c0150428a47948037c322365b7fe6fe57ac88d8f80889e9ff38177bad8c8d8d98db42908b389cb59692a58ce275aa15acb032ca951b3e0a3404b7f33f655b7c7d83a2f8d1b6bbff49d5fcedf2e030e80881aa436db27a5c0dea13f32e7d460dbf01240c2320c2bb5b3225b17145c72d61d47c8f84d1e19417ebd8ce3638a82d395cc6f7050b6209d9283dc7b93fecc04f3f9e7f566829ac41568ef799480c733c09759aa9734e2013d7640dc6151018ea902bc"),
			BlindedMessage:   mustHex("10c166c6a711e81c46f45b18e5873cc4f494f003180dd7f115585d871a28930259654fe28a54dab319cc5011204c8373b50a57b0fdc7a678bd74c523259dfe4fd5ea9f52f170e19dfa332930ad1609fc8a00902d725cfe50685c95e5b2968c9a2828a21207fcf393d15f849769e2af34ac4259d91dfd98c3a707c509e1af55647efaa31290ddf48e0133b798562af5eabd327270ac2fb6c594734ce339a14ea4fe1b9a2f81c0bc230ca523bda17ff42a377266bc2778a274c0ae5ec5a8cbbe364fcf0d2403f7ee178d77ff28b67a20c7ceec009182dbcaa9bc99b51ebbf13b7d542be337172c6474f2cd3561219fe0dfa3fb207cff89632091ab841cf38d8aa88af6891539f263adb8eac6402c41b6ebd72984e43666e537f5f5fe27b2b5aa114957e9a580730308a5f5a9c63a1eb599f093ab401d0c6003a451931b6d124180305705845060ebba6b0036154fcef3e5e9f9e4b87e8f084542fd1dd67e7782a5585150181c01eb6d90cb95883837384a5b91dbb606f266059ecc51b5acbaa280e45cfd2eec8cc1cdb1b7211c8e14805ba683f9b78824b2eb005bc8a7d7179a36c152cb87c8219e5569bba911bb32a1b923ca83de0e03fb10fba75d85c55907dda5a2606bf918b056c3808ba496a4d95532212040a5f44f37e1097f26dc27b98a51837daa78f23e532156296b64352669c94a8a855acf30533d8e0594ace7c442"),
			BlindedSignature: mustHex("364f6a40dbfbc3bbb257943337eeff791a0f290898a6791283bba581d9eac90a6376a837241f5f73a78a5c6746e1306ba3adab6067c32ff69115734ce014d354e2f259d4cbfb890244fd451a497fe6ecf9aa90d19a2d441162f7eaa7ce3fc4e89fd4e76b7ae585be2a2c0fd6fb246b8ac8d58bcb585634e30c9168a434786fe5e0b74bfe8187b47ac091aa571ffea0a864cb906d0e28c77a00e8cd8f6aba4317a8cc7bf32ce566bd1ef80c64de041728abe087bee6cadd0b7062bde5ceef308a23bd1ccc154fd0c3a26110df6193464fc0d24ee189aea8979d722170ba945fdcce9b1b4b63349980f3a92dc2e5418c54d38a862916926b3f9ca270a8cf40dfb9772bfbdd9a3e0e0892369c18249211ba857f35963d0e05d8da98f1aa0c6bba58f47487b8f663e395091275f82941830b050b260e4767ce2fa903e75ff8970c98bfb3a08d6db91ab1746c86420ee2e909bf681cac173697135983c3594b2def673736220452fde4ddec867d40ff42dd3da36c84e3e52508b891a00f50b4f62d112edb3b6b6cc3dbd546ba10f36b03f06c0d82aeec3b25e127af545fac28e1613a0517a6095ad18a98ab79f68801e05c175e15bae21f821e80c80ab4fdec6fb34ca315e194502b8f3dcf7892b511aee45060e3994cd15e003861bc7220a2babd7b40eda03382548a34a7110f9b1779bf3ef6011361611e6bc5c0dc851e1509de1a"),
			Signature:        mustHex("6fef8bf9bc182cd8cf7ce45c7dcf0e6f3e518ae48f06f3c670c649ac737a8b8119a34d51641785be151a697ed7825fdfece82865123445eab03eb4bb91cecf4d6951738495f8481151b62de869658573df4e50a95c17c31b52e154ae26a04067d5ecdc1592c287550bb982a5bb9c30fd53a768cee6baabb3d483e9f1e2da954c7f4cf492fe3944d2fe456c1ecaf0840369e33fb4010e6b44bb1d721840513524d8e9a3519f40d1b81ae34fb7a31ee6b7ed641cb16c2ac999004c2191de0201457523f5a4700dd649267d9286f5c1d193f1454c9f868a57816bf5ff76c838a2eeb616a3fc9976f65d4371deecfbab29362caebdff69c635fe5a2113da4d4d8c24f0b16a0584fa05e80e607c5d9a2f765f1f069f8d4da21f27c2a3b5c984b4ab24899bef46c6d9323df4862fe51ce300fca40fb539c3bb7fe2dcc9409e425f2d3b95e70e9c49c5feb6ecc9d43442c33d50003ee936845892fb8be475647da9a080f5bc7f8a716590b3745c2209fe05b17992830ce15f32c7b22cde755c8a2fe50bd814a0434130b807dc1b7218d4e85342d70695a5d7f29306f25623ad1e8aa08ef71b54b8ee447b5f64e73d09bdd6c3b7ca224058d7c67cc7551e9241688ada12d859cb7646fbd3ed8b34312f3b49d69802f0eaa11bc4211c2f7a29cd5c01ed01a39001c5856fab36228f5ee2f2e1110811872fe7c865c42ed59029c706195d52"),
		},
	}
}

// PublicMetadataVector is a signing run over a message bound to public
// metadata. The signed message is MessageMask || Message.
type PublicMetadataVector struct {
	Message          []byte
	PublicMetadata   []byte
	MessageMask      []byte
	BlindedMessage   []byte
	BlindedSignature []byte
	Signature        []byte
}

// PublicMetadataVectorSet groups vectors produced with one key.
type PublicMetadataVectorSet struct {
	Key *rsa.PrivateKey
	// UseRSAPublicExponent reports whether the augmented exponent includes e.
	UseRSAPublicExponent bool
	Vectors              []PublicMetadataVector
}

// PublicMetadataVectors use e*H(n, metadata) as the public exponent.
func PublicMetadataVectors() PublicMetadataVectorSet {
	key := rsaKeyHex{
		n: "d6930820f71fe517bf3259d14d40209b02a5c0d3d61991c731dd7da39f8d69821552e2318d6c9ad897e603887a476ea3162c1205da9ac96f02edf31df049bd55f142134c17d4382a0e78e275345f165fbe8e49cdca6cf5c726c599dd39e09e75e0f330a33121e73976e4facba9cfa001c28b7c96f8134f9981db6750b43a41710f51da4240fe03106c12acb1e7bb53d75ec7256da3fddd0718b89c365410fce61bc7c99b115fb4c3c318081fa7e1b65a37774e8e50c96e8ce2b2cc6b3b367982366a2bf9924c4bafdb3ff5e722258ab705c76d43e5f1f121b984814e98ea2b2b8725cd9bc905c0bc3d75c2a8db70a7153213c39ae371b2b5dc1dafcb19d6fae9",
		e: "010001",
		d: "4e21356983722aa1adedb084a483401c1127b781aac89eab103e1cfc52215494981d18dd8028566d9d499469c25476358de23821c78a6ae43005e26b394e3051b5ca206aa9968d68cae23b5affd9cbb4cb16d64ac7754b3cdba241b72ad6ddfc000facdb0f0dd03abd4efcfee1730748fcc47b7621182ef8af2eeb7c985349f62ce96ab373d2689baeaea0e28ea7d45f2d605451920ca4ea1f0c08b0f1f6711eaa4b7cca66d58a6b916f9985480f90aca97210685ac7b12d2ec3e30a1c7b97b65a18d38a93189258aa346bf2bc572cd7e7359605c20221b8909d599ed9d38164c9c4abf396f897b9993c1e805e574d704649985b600fa0ced8e5427071d7049d",
		p: "dcd90af1be463632c0d5ea555256a20605af3db667475e190e3af12a34a3324c46a3094062c59fb4b249e0ee6afba8bee14e0276d126c99f4784b23009bf6168ff628ac1486e5ae8e23ce4d362889de4df63109cbd90ef93db5ae64372bfe1c55f832766f21e94ea3322eb2182f10a891546536ba907ad74b8d72469bea396f3",
		q: "f8ba5c89bd068f57234a3cf54a1c89d5b4cd0194f2633ca7c60b91a795a56fa8c8686c0e37b1c4498b851e3420d08bea29f71d195cfbd3671c6ddc49cf4c1db5b478231ea9d91377ffa98fe95685fca20ba4623212b2f2def4da5b281ed0100b651f6db32112e4017d831c0da668768afa7141d45bbc279f1e0f8735d74395b3",
	}
	return PublicMetadataVectorSet{
		Key:                  key.privateKey(),
		UseRSAPublicExponent: true,
		Vectors:              []PublicMetadataVector{
			{
				Message:          mustHex("68656c6c6f20776f726c64"),
				PublicMetadata:   mustHex("6d65746164617461"),
				MessageMask:      mustHex("64b5c5d2b2ca672690df59bab774a389606d85d56f92a18a57c42eb4cb164d43"),
				BlindedMessage:   mustHex("1b9e1057dd2d05a17ad2feba5f87a4083cc825fe06fc70f0b782062ea0043fa65ec8096ce5d403cfa2aa3b11195b2a655d694386058f6266450715a936b5764f42977c0a0933ff3054d456624734fd2c019def792f00d30b3ac2f27859ea56d835f80564a3ba59f3c876dc926b2a785378ca83f177f7b378513b36a074e7db59448fd4007b54c64791a33b61721ab3b5476165193af30f25164d480684d045a8d0782a53dd73774563e8d29e48b175534f696763abaab49fa03a055ec9246c5e398a5563cc88d02eb57d725d3fc9231ae5139aa7fcb9941060b0bf0192b8c81944fa0c54568b0ab4ea9c4c4c9829d6dbcbf8b48006b322ee51d784ac93e4bf13"),
				BlindedSignature: mustHex("7ef75d9887f29f2232602acab43263afaea70313a0c90374388df5a7a7440d2584c4b4e5b886accc065bf4824b4b22370ddde7fea99d4cd67f8ed2e4a6a2b7b5869e8d4d0c52318320c5bf7b9f02bb132af7365c471e799edd111ca9441934c7db76c164b0515afc5607b8ceb584f5b1d2177d5180e57218265c07aec9ebde982f3961e7ddaa432e47297884da8f4512fe3dc9ab820121262e6a73850920299999c293b017cd800c6ec994f76b6ace35ff4232f9502e6a52262e19c03de7cc27d95ccbf4c381d698fcfe1f200209814e04ae2d6279883015bbf36cabf3e2350be1e175020ee9f4bb861ba409b467e23d08027a699ac36b2e5ab988390f3c0ee9"),
				Signature:        mustHex("abd6813bb4bbe3bc8dc9f8978655b22305e5481b35c5bdc4869b60e2d5cc74b84356416abaaca0ca8602cd061248587f0d492fee3534b19a3fe089de18e4df9f3a6ad289afb5323d7934487b8fafd25943766072bab873fa9cd69ce7328a57344c2c529fe96983ca701483ca353a98a1a9610391b7d32b13e14e8ef87d04c0f56a724800655636cfff280d35d6b468f68f09f56e1b3acdb46bc6634b7a1eab5c25766cec3b5d97c37bbca302286c17ff557bcf1a4a0e342ea9b2713ab7f935c8174377bace2e5926b39834079761d9121f5df1fad47a51b03eab3d84d050c99cf1f68718101735267cca3213c0a46c0537887ffe92ca05371e26d587313cc3f4"),
			},
			{
				Message:          mustHex("68656c6c6f20776f726c64"),
				PublicMetadata:   mustHex(""),
				MessageMask:      mustHex("ebb56541b9a1758028033cfb085a4ffe048f072c6c82a71ce21d40842b5c0a89"),
				BlindedMessage:   mustHex("d1fc97f30efbf116fadd9895130cdd55f939211f7db19ce9a85287227a02b33fb698b52399f81be0e1f598482000202ec89968085753eae1810f14676b514e08238c8aa79d8b999af54e9f4282c6220d4d760716e48e5413f3228cc59ce10b8252916640de7b9b5c7dc9c2bff9f53b4fb5eb4a5f8bab49af3fd1b955d34312073d15030e7fdb44bdb23460d1c5662597f9947092def7fff955a5f3e63419ae9858c6405f9609b63c4331e0cf90d24c196bee554f2b78e0d8f6da3d4308c8d4ae9fbe18a8bb7fa4fc3b9cacd4263e5bd6e12ed891cfdfba8b50d0f37d7a9abe065238367907c685ed2c224924caf5d8fe41f5db898b09a0501d318d9f65d88cb8"),
				BlindedSignature: mustHex("400c1bcdfa56624f15d04f6954908b5605dbeff4cd56f384d7531669970290d706529d44cde4c972a1399635525a2859ef1d914b4130068ed407cfda3bd9d1259790a30f6d8c07d190aa98bf21ae9581e5d61801565d96e9eec134335958b3d0b905739e2fd9f39074da08f869089fe34de2d218062afa16170c1505c67b65af4dcc2f1aeccd48275c3dacf96116557b7f8c7044d84e296a0501c511ba1e6201703e1dd834bf47a96e1ac4ec9b935233ed751239bd4b514b031522cd51615c1555e520312ed1fa43f55d4abeb222ee48b4746c79006966590004714039bac7fd18cdd54761924d91a4648e871458937061ef6549dd12d76e37ed417634d88914"),
				Signature:        mustHex("4062960edb71cc071e7d101db4f595aae4a98e0bfe6843aca3e5f48c9dfb46d505e8c19806ffa07f040313d44d0996ef9f69a86fa5946cb818a32627fe2df2a0e80350288ae4fedfbee4193554cc1433d9d27639db8b4635265504d87dca7054c85e0c882d32887534405e6cc4e7eb4b174383e5ce4eebbfffb217f353102f6d1a0461ef89238de31b0a0c134dfac0d2a8c533c807ccdd557c6510637596a490d5258b77410421be4076ecdf2d7e9044327e36e349751f3239681bba10fe633f1b246f5a9f694706316898c900af2294f47267f2e9ad1e61c7f56bf643280258875d29f3745dfdb74b9bbcd5fe3dea62d9be85e2c6f5aed68bc79f8b4a27b3de"),
			},
			{
				Message:          mustHex(""),
				PublicMetadata:   mustHex("6d65746164617461"),
				MessageMask:      mustHex("f2a4ed7c5aa338430c7026d7d92017f994ca1c8b123b236dae8666b1899059d0"),
				BlindedMessage:   mustHex("7756a1f89fa33cfc083567e02fd865d07d6e5cd4943f030a2f94b5c23f3fe79c83c49c594247d02885e2cd161638cff60803184c9e802a659d76a1c53340972e62e728cc70cf684ef03ce2d05cefc729e6eee2ae46afa17b6b27a64f91e4c46cc12adc58d9cb61a4306dac732c9789199cfe8bd28359d1911678e9709bc159dae34ac7aa59fd0c95962c9f4904bf04aaba8a7e774735bd03be4a02fb0864a53354a2e2f3502506318a5b03961366005c7b120f0e6b87b44bc15658c3e8985d69f6adea38c24fe5e7b4bafa1ad6dc7d729281c26dffc88bd34fcc5a5f9df9b9781f99ea47472ba8bd679aaada59525b978ebc8a3ea2161de84b7398e4878b751b"),
				BlindedSignature: mustHex("2a13f73e4e255a9d5bc6f76cf48dfbf189581c2b170600fd3ab1a3def148846213239b9d0a981537541cb4f481a602aeebca9ef28c9fcdc63d15d4296f85d864f799edf08e9045180571ce1f1d3beff293b18aae9d8845068cc0d9a05b822295042dc56a1a2b604c51aa65fd89e6d163fe1eac63cf603774797b7936a8b7494d43fa37039d3777b8e57cf0d95227ab29d0bd9c01b3eae9dde5fca7141919bd83a17f9b1a3b401507f3e3a8e8a2c8eb6c5c1921a781000fee65b6dd851d53c89cba2c3375f0900001c04855949b7fa499f2a78089a6f0c9b4d36fdfcac2d846076736c5eaedaf0ae70860633e51b0de21d96c8b43c600afa2e4cc64cd66d77a8f"),
				Signature:        mustHex("67985949f4e7c91edd5647223170d2a9b6611a191ca48ceadb6c568828b4c415b6270b037cd8a68b5bca1992eb769aaef04549422889c8b156b9378c50e8a31c07dc1fe0a80d25b870fadbcc1435197f0a31723740f3084ecb4e762c623546f6bd7d072aa565bc2105b954244a2b03946c7d4093ba1216ec6bb65b8ca8d2f3f3c43468e80b257c54a2c2ea15f640a08183a00488c7772b10df87232ee7879bee93d17e194d6b703aeceb348c1b02ec7ce202086b6494f96a0f2d800f12e855f9c33dcd3abf6bd8044efd69d4594a974d6297365479fe6c11f6ecc5ea333031c57deb6e14509777963a25cdf8db62d6c8c68aa038555e4e3ae4411b28e43c8f57"),
			},
			{
				Message:          mustHex(""),
				PublicMetadata:   mustHex(""),
				MessageMask:      mustHex("ba3ea4b1e475eebe11d4bfe3a48521d3ba8cd62f3baed9ec29fbbf7ff0478bc0"),
				BlindedMessage:   mustHex("99d725c5613ff87d16464b0375b0976bf4d47319d6946e85f0d0c2ca79eb02a4c0c282642e090a910b80fee288f0b3b6777e517b757fc6c96ea44ac570216c8fcd868e15da4b389b0c70898c5a2ed25c1d13451e4d407fe1301c231b4dc76826b1d4cc5e64b0e28fb9c71f928ba48c87e308d851dd07fb5a7e0aa5d0dce61d1348afb4233355374e5898f63adbd5ba215332d3329786fb7c30ef04c181b267562828d8cf1295f2ef4a05ef1e03ed8fee65efb7725d8c8ae476f61a35987e40efc481bcb4b89cb363addfb2adacf690aff5425107d29b2a75b4665d49f255c5caa856cdc0c5667de93dbf3f500db8fcce246a70a159526729d82c34df69c926a8"),
				BlindedSignature: mustHex("a9678acee80b528a836e4784f0690fdddce147e5d4ac506e9ec51c11b16ee2fd5a32e382a3c3d276a681bb638b63040388d53894afab79249e159835cd6bd65849e5d1397666f03d1351aaec3eae8d3e7cba3135e7ec4e7b478ef84d79d81039693adc6b130b0771e3d6f0879723a20b7f72b476fe6fef6f21e00b9e3763a364ed918180f939c3510bb5f46b35c06a00e51f049ade9e47a8e1c3d5689bd5a43df20b73d70dcacfeed9fa23cabfbe750779997da6bc7269d08b2620acaa3daa0d9e9d4b87ef841ebcc06a4c0af13f1d13f0808f512c50898586b4fc76d2b32858a7ddf715a095b7989d8df50654e3e05120a83cec275709cf79571d8f46af2b8e"),
				Signature:        mustHex("ba57951810dbea7652209eb73e3b8edafc56ca7061475a048751cbfb995aeb4ccda2e9eb309698b7c61012accc4c0414adeeb4b89cd29ba2b49b1cc661d5e7f30caee7a12ab36d6b52b5e4d487dbff98eb2d27d552ecd09ca022352c9480ae27e10c3a49a1fd4912699cc01fba9dbbfd18d1adcec76ca4bc44100ea67b9f1e00748d80255a03371a7b8f2c160cf632499cea48f99a6c2322978bd29107d0dffdd2e4934bb7dc81c90dd63ae744fd8e57bff5e83f98014ca502b6ace876b455d1e3673525ba01687dce998406e89100f55316147ad510e854a064d99835554de8949d3662708d5f1e43bca473c14a8b1729846c6092f18fc0e08520e9309a32de"),
			},
		},
	}
}

// PublicMetadataNoPublicExponentVectors use H(n, metadata) alone as the
// public exponent.
func PublicMetadataNoPublicExponentVectors() PublicMetadataVectorSet {
	key := rsaKeyHex{
		n: "d6930820f71fe517bf3259d14d40209b02a5c0d3d61991c731dd7da39f8d69821552e2318d6c9ad897e603887a476ea3162c1205da9ac96f02edf31df049bd55f142134c17d4382a0e78e275345f165fbe8e49cdca6cf5c726c599dd39e09e75e0f330a33121e73976e4facba9cfa001c28b7c96f8134f9981db6750b43a41710f51da4240fe03106c12acb1e7bb53d75ec7256da3fddd0718b89c365410fce61bc7c99b115fb4c3c318081fa7e1b65a37774e8e50c96e8ce2b2cc6b3b367982366a2bf9924c4bafdb3ff5e722258ab705c76d43e5f1f121b984814e98ea2b2b8725cd9bc905c0bc3d75c2a8db70a7153213c39ae371b2b5dc1dafcb19d6fae9",
		e: "010001",
		d: "4e21356983722aa1adedb084a483401c1127b781aac89eab103e1cfc52215494981d18dd8028566d9d499469c25476358de23821c78a6ae43005e26b394e3051b5ca206aa9968d68cae23b5affd9cbb4cb16d64ac7754b3cdba241b72ad6ddfc000facdb0f0dd03abd4efcfee1730748fcc47b7621182ef8af2eeb7c985349f62ce96ab373d2689baeaea0e28ea7d45f2d605451920ca4ea1f0c08b0f1f6711eaa4b7cca66d58a6b916f9985480f90aca97210685ac7b12d2ec3e30a1c7b97b65a18d38a93189258aa346bf2bc572cd7e7359605c20221b8909d599ed9d38164c9c4abf396f897b9993c1e805e574d704649985b600fa0ced8e5427071d7049d",
		p: "dcd90af1be463632c0d5ea555256a20605af3db667475e190e3af12a34a3324c46a3094062c59fb4b249e0ee6afba8bee14e0276d126c99f4784b23009bf6168ff628ac1486e5ae8e23ce4d362889de4df63109cbd90ef93db5ae64372bfe1c55f832766f21e94ea3322eb2182f10a891546536ba907ad74b8d72469bea396f3",
		q: "f8ba5c89bd068f57234a3cf54a1c89d5b4cd0194f2633ca7c60b91a795a56fa8c8686c0e37b1c4498b851e3420d08bea29f71d195cfbd3671c6ddc49cf4c1db5b478231ea9d91377ffa98fe95685fca20ba4623212b2f2def4da5b281ed0100b651f6db32112e4017d831c0da668768afa7141d45bbc279f1e0f8735d74395b3",
	}
	return PublicMetadataVectorSet{
		Key:                  key.privateKey(),
		UseRSAPublicExponent: false,
		Vectors:              []PublicMetadataVector{
			{
				Message:          mustHex("68656c6c6f20776f726c64"),
				PublicMetadata:   mustHex("6d65746164617461"),
				MessageMask:      mustHex(""),
				BlindedMessage:   mustHex("cfd613e27b8eb15ee0b1df0e1bdda7809a61a29e9b6e9f3ec7c345353437638e85593a7309467e36396b0515686fe87330b312b6f89df26dc1cc88dd222186ca0bfd4ffa0fd16a9749175f3255425eb299e1807b76235befa57b28f50db02f5df76cf2f8bcb55c3e2d39d8c4b9a0439e71c5362f35f3db768a5865b864fdf979bc48d4a29ae9e7c2ea259dc557503e2938b9c3080974bd86ad8b0daaf1d103c31549dcf767798079f88833b579424ed5b3d700162136459dc29733256f18ceb74ccf0bc542db8829ca5e0346ad3fe36654715a3686ceb69f73540efd20530a59062c13880827607c68d00993b47ad6ba017b95dfc52e567c4bf65135072b12a4"),
				BlindedSignature: mustHex("ca7d4fd21085de92b514fbe423c5745680cace6ddfa864a9bd97d29f3454d5d475c6c1c7d45f5da2b7b6c3b3bc68978bb83929317da25f491fee86ef7e051e7195f3558679b18d6cd3788ac989a3960429ad0b7086945e8c4d38a1b3b52a3903381d9b1bf9f3d48f75d9bb7a808d37c7ecebfd2fea5e89df59d4014a1a149d5faecfe287a3e9557ef153299d49a4918a6dbdef3e086eeb264c0c3621bcd73367195ae9b14e67597eaa9e3796616e30e264dc8c86897ae8a6336ed2cd93416c589a058211688cf35edbd22d16e31c28ff4a5c20f1627d09a71c71af372edc18d2d7a6e39df9365fe58a34605fa1d9dc53efd5a262de849fb083429e20586e210e"),
				Signature:        mustHex("cdc6243cd9092a8db6175b346912f3cc55e0cf3e842b4582802358dddf6f61decc37b7a9ded0a108e0c857c12a8541985a6efad3d17f7f6cce3b5ee20016e5c36c7d552c8e8ff6b5f3f7b4ed60d62eaec7fc11e4077d7e67fc6618ee092e2005964b8cf394e3e409f331dca20683f5a631b91cae0e5e2aa89eeef4504d24b45127abdb3a79f9c71d2f95e4d16c9db0e7571a7f524d2f64438dfb32001c00965ff7a7429ce7d26136a36ebe14644559d3cefc477859dcd6908053907b325a34aaf654b376fade40df4016ecb3f5e1c89fe3ec500a04dfe5c8a56cad5b086047d2f963ca73848e74cf24bb8bf1720cc9de4c78c64449e8af3e7cddb0dab1821998"),
			},
			{
				Message:          mustHex("68656c6c6f20776f726c64"),
				PublicMetadata:   mustHex(""),
				MessageMask:      mustHex(""),
				BlindedMessage:   mustHex("5e6568cd0bf7ea71ad91e0a9708abb5e97661c41812eb994b672f10aa8983151113aeaabcf1306fa5a493e3dbdd58fc8bdb61aac934fae832676bcab7abacdcc1b9c1f2af3586ae009042293b6945fee0aeffb2d2b8a24f82614b8be39bab71a535f6d65f1631e927dbd471b0753e7a63a201c7ecd26e7fbbb5e21e02f865b64e20731004c395b0e059a92fffa4c636ac4c00db9aa086b5dd1a3dd101bb04970b12ca3f4936f246e32d394f328cea2510554060e8d291acdbee04b8bc91e967241ba45f3509d63ded5f9b358f4216f37a885e563b7baa93a717ca7cdbe10e398d14bb2d5a1376b4a5f83226ce2c575087bc28d743caeff9c1b11cc8bd02f5f14"),
				BlindedSignature: mustHex("72c4e0f4f677aa1dbb686e23b5944b3afdc7f824711a1f7486d1ed6fa20aad255a1412885aee04c64359964e694a713da2a1684325c1c31401cac1ea39a9e454675b55f743ff144ac605d0ed254b12d9bdd43b0e8a17c0d4711239732e45e4166261d0b16d2f29403c5f2584a29b225daa7530ba15fc9af15ed2ce8fcb126ad0b0758fd522fbf99a83e4cfe0539aa264d06a1633deee0053f45fc8a944f1468a0c0c449155139779a3230c8fa41a81858418151fa195f57ea645699f550d3cb37c549542d436071d1af74e629f938fa4717ca9def382fc35089e4caec9e5d740c38ecb2aa88c90176d2f322866acfd50e2b92313161e81327f889aca0c94bcb8"),
				Signature:        mustHex("a7ace477c1f416a40e93ddf8a454f9c626b33c5a20067d81bdfef7b88bc15de2b04624478b2134b4b23d91285d72ca4eb9c6c911cd7be2437f4e3b24426bce1a1cb52e2c8a4d13f7fd5c9b0f943b92b8bbcba805b847a0ea549dbc249f2e812bf03dd6b2588c8af22bf8b6bba56ffd8d2872b2f0ebd42ac8bd8339e5e63806199deec3cf392c078f66e72d9be817787d4832c45c1f192465d87f6f6c333ce1e8c5641c7069280443d2227f6f28ff2045acdc368f2f94c38a3c909591a27c93e1778630aeeeb623805f37c575213091f096be14ffa739ee55b3f264450210a4b2e61a9b12141ca36dd45e3b81116fc286e469b707864b017634b8a409ae99c9f1"),
			},
			{
				Message:          mustHex(""),
				PublicMetadata:   mustHex("6d65746164617461"),
				MessageMask:      mustHex(""),
				BlindedMessage:   mustHex("92d5456738e0cfe0fa770b51e6a72d633d7cec3a945459f1db96dbc500a5d1bca34a839059579759301c098231b102fb1e114bf9f892f42f902a336f4a3585b23efa906dfcb94213f4d3b39951551cedecbf51efa213ad030cf821ee3fa46a57d67429f838ff728f47111f7f1b22000a979c0f56cc581396935780d76173410d2a8a5688cd59622903008fe50af1fcc5e7cf96affad7e60fbed67996c7a377effa0f08d9273cd33536b2625c9575d10636cc964636a1500f4fcb22aabbef77fe415cbc7245c1032d34bd480ee338f55be0a79c0076d9cf9c94c0db3003a33b23c62dbd1a85f2b15db5d153b318cca53c6d68e1e63bafa39c9a43be72f36d2569"),
				BlindedSignature: mustHex("a76a1c53566a9781de04d87e8c3a0bc902b47819e7b900580654215b0a710cb563b085b5e9fff150791f759da03a139dfc9159c21410f1e3d345b8c5dcca35211772900f85c5eec065987cbdbf303e9651196223263a713e4135d6b20bfa8fb8212341665647a9a7e07a831ccbf9e62d9366ec9ac0bbe96228e6fbb848f8f6f474cce68e3556dc882847e9e61b5b5e02bbfd6152aeca74e8782a54ffe6552d63fb837738a05044b38f7e908c4989b202bd858695c61e12cf9d47ef276a17917e39f942871defd9747541957b1e2f8950da43c9a05ba4835bded23c24cf64edfee10dd0c70b071427cfcbb8b5eb225daf149a6b4d42bebcc536380a9d753a8b1e"),
				Signature:        mustHex("02bc0f2728e2b8cd1c1b9873d4b7f5a62017430398165a6f8964842eaa19c1de292207b74dc25ee0aa90493216d3fbf8e1b2947fd64335277b34767f987c482c69262967c8a8aaf180a4006f456c804cdc7b92d956a351ad89703cc76f69ed45f24d68e1ae0361479e0f6faf10c3b1582de2dcd2af432d57c0c89c8efb1cf3ac5f991fe9c4f0ad24473939b053674a2582518b4bd57da109f4f37bc91a2f806e82bb2b80d486d0694e663992c9517c946607b978f557bbb769d4cd836d693c77da480cd89b916e5e4190f317711d9c7e64528a314a14bf0b9256f4c60e9ddb550583c21755ab882bdfdf22dc840249389b1e0a2189f58e19b41c5f313cddce29"),
			},
			{
				Message:          mustHex(""),
				PublicMetadata:   mustHex(""),
				MessageMask:      mustHex(""),
				BlindedMessage:   mustHex("ba562cba0e69070dc50384456391defa410d36fa853fd235902ff5d015d688a44def6b6a7e71a69bff8ee510f5a9aa44e9afddd3e766f2423b3fc783fd1a9ab618586110987c1b3ddce62d25cae500aa92a6b886cb609829d06e67fbf28fbbf3ee7d5cc125481dd002b908097732e0df06f288cc6eb54565f8153d480085b56ab6cb5801b482d12f50558eb3cb0eb7a4ff8fcc54d4d7fcc2f8913a401ae1d1303ead7964f2746e4804e2848bba87f53cf1412afedc82d9c383dd095e0eb6f90cc74bc4bb5ea7529ded9cde2d489575d549b884379abe6d7b71969e6a9c09f1963d2719eefccd5f2a407845961ccc1fa580a93c72902b2499d96f89e6c53fc888"),
				BlindedSignature: mustHex("280c5934022fd17f7f810d4f7adf1d29ced47d098834411d672163cc793bcaad239d07c4c45048a682995950ce84703064cd8c16d6f2579f7a65b66c274faccc6c73c9d299dcf35c96338c9b81af2f93554a78528551e04be931c8502ee6a21ef65d1fa3cd049a993e261f85c841b75857d6bf02dd4532e14702f8f5e1261f7543535cdf9379243b5b8ca5cd69d2576276a6c25b78ab7c69d2b0c568eb57cf1731983016dece5b59e75301ca1a148154f2592c8406fee83a434f7b3192649c5be06000866ff40bf09b558c7af4bbb9a79d5d13151e7b6e602e30c4ab70bbbce9c098c386e51b98aefab67b8efc03f048210a785fd538ee6b75ecd484c1340d91"),
				Signature:        mustHex("b7d45ec4db11f9b74a6b33806e486f7ee5f87c4fa7c57d08caf0ca6d3ba55e66bf0769c84b9187b9a86e49ba0cb58348f01156ac5bc2e9570fe0a8c33d0ad049a965aeb2a8d8a3cbb30f89a3da6732a9bb3d9415141be4e9052f49d422301a9cfce49947db7d52a1c620b7106ae43afbcb7cb29b9c215e0c2b4cf8d62db67224dd3de9f448f7b6607977c608595d29380b591a2bff2dff57ea2c77e9cdf69c1821ff183a7626d45bbe1197767ac577715473d18571790b1cf59ee35e64362c826246ae83923d749117b7ec1b4478ee15f990dc200745a45f175d23c8a13d2dbe58b1f9d10db71917708b19eeeab230fe6026c249342216ee785d9422c3a8dc89"),
			},
		},
	}
}
